package routes

import (
	"github.com/anjiri1684/tutoring_center/handlers"
	"github.com/anjiri1684/tutoring_center/middleware"
	"github.com/gofiber/fiber/v2"
)

func RescheduleRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reschedules := api.Group("/reschedules", middleware.Protected(), middleware.ParentRequired())
	reschedules.Get("/me", handlers.GetMyRescheduleRequests)
	reschedules.Post("/bookings/:bookingId", handlers.RequestReschedule)

	staffReschedules := api.Group("/staff/reschedules", middleware.Protected(), middleware.StaffRequired())
	staffReschedules.Get("", handlers.ListRescheduleRequests)
	staffReschedules.Post("/:requestId/resolve", handlers.ResolveReschedule)
}
