package routes

import (
	"github.com/anjiri1684/tutoring_center/handlers"
	"github.com/anjiri1684/tutoring_center/middleware"
	"github.com/gofiber/fiber/v2"
)

func ParentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	children := api.Group("/children", middleware.Protected(), middleware.ParentRequired())
	children.Post("", handlers.AddChild)
	children.Get("", handlers.GetMyChildren)
}
