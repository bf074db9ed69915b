package routes

import (
	"github.com/anjiri1684/tutoring_center/handlers"
	"github.com/anjiri1684/tutoring_center/middleware"
	"github.com/gofiber/fiber/v2"
)

func ContractRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	contracts := api.Group("/contracts", middleware.Protected())
	contracts.Get("/me", middleware.ParentRequired(), handlers.GetMyContracts)
	contracts.Get("/me/:contractId/sessions", middleware.ParentRequired(), handlers.GetMyContractSessions)

	staffContracts := api.Group("/staff/contracts", middleware.Protected(), middleware.StaffRequired())
	staffContracts.Get("", handlers.ListContracts)
	staffContracts.Post("", handlers.CreateContract)
	staffContracts.Get("/:contractId", handlers.GetContract)
	staffContracts.Patch("/:contractId/status", handlers.UpdateContractStatus)
	staffContracts.Post("/:contractId/tutors", handlers.AssignTutors)
}
