package routes

import (
	"github.com/anjiri1684/tutoring_center/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/packages", handlers.ListPackages)
	api.Get("/centers", handlers.ListCenters)
}
