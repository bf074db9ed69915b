package routes

import (
	"github.com/anjiri1684/tutoring_center/handlers"
	"github.com/anjiri1684/tutoring_center/middleware"
	"github.com/gofiber/fiber/v2"
)

func TutorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tutor := api.Group("/tutor", middleware.Protected(), middleware.TutorRequired())
	tutor.Post("/availability", handlers.CreateAvailability)
	tutor.Get("/availability", handlers.GetMyAvailability)
	tutor.Delete("/availability/:slotId", handlers.DeleteAvailability)
	tutor.Get("/sessions", handlers.GetMyTutorSessions)

	staffTutors := api.Group("/staff/tutors", middleware.Protected(), middleware.StaffRequired())
	staffTutors.Get("", handlers.ListTutors)
	staffTutors.Get("/:tutorId/schedule", handlers.GetTutorSchedule)
}
