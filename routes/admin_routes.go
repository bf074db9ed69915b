package routes

import (
	"github.com/anjiri1684/tutoring_center/handlers"
	"github.com/anjiri1684/tutoring_center/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	staff := api.Group("/staff", middleware.Protected(), middleware.StaffRequired())
	staff.Post("/packages", handlers.CreatePackage)
	staff.Post("/centers", handlers.CreateCenter)
}
