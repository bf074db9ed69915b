package handlers

import (
	"time"

	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateRescheduleRequest struct {
	RequestedDate string `json:"requested_date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string `json:"end_time" validate:"required,datetime=15:04"`
	Reason        string `json:"reason" validate:"required,min=5"`
}

func RequestReschedule(c *fiber.Ctx) error {
	parentID := userIDFromToken(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req CreateRescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	requestedDate, _ := time.Parse("2006-01-02", req.RequestedDate)

	request, err := rescheduleService.CreateRequest(c.Context(), parentID, bookingID,
		requestedDate, req.StartTime, req.EndTime, req.Reason)
	if err != nil {
		return renderSchedulingError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Reschedule request submitted. Staff will review it shortly.",
		"request": request,
	})
}

func GetMyRescheduleRequests(c *fiber.Ctx) error {
	parentID := userIDFromToken(c)

	var requests []models.RescheduleRequest
	database.DB.
		Preload("Session").
		Joins("JOIN contracts ON reschedule_requests.contract_id = contracts.id").
		Where("contracts.parent_id = ?", parentID).
		Order("reschedule_requests.created_at desc").
		Find(&requests)

	return c.JSON(requests)
}

func ListRescheduleRequests(c *fiber.Ctx) error {
	var requests []models.RescheduleRequest
	q := database.DB.
		Preload("Session").
		Preload("Contract").
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	q.Find(&requests)

	return c.JSON(requests)
}

type ResolveRescheduleRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Note     string `json:"note,omitempty"`
}

func ResolveReschedule(c *fiber.Ctx) error {
	staffID := userIDFromToken(c)
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var req ResolveRescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	request, err := rescheduleService.Resolve(c.Context(), staffID, requestID, req.Decision, req.Note)
	if err != nil {
		return renderSchedulingError(c, err)
	}

	go func() {
		var contract models.Contract
		if err := database.DB.Preload("Parent").First(&contract, "id = ?", request.ContractID).Error; err != nil {
			return
		}
		subject := "Your Reschedule Request Was Approved"
		body := "<h1>Reschedule Approved</h1><p>Your session has been moved to " +
			request.StartTime.Format("Monday, 2 Jan 2006 at 15:04") + ".</p>"
		if request.Status == models.RequestRejected {
			subject = "Your Reschedule Request Was Rejected"
			body = "<h1>Reschedule Rejected</h1><p>Your session keeps its original time. Please contact the center for details.</p>"
		}
		notifications.SendEmail(contract.Parent.FullName, contract.Parent.Email, subject, body)
	}()

	return c.JSON(request)
}
