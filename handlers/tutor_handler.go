package handlers

import (
	"time"

	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/scheduling"
	"github.com/gofiber/fiber/v2"
)

type CreateAvailabilityRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

func CreateAvailability(c *fiber.Ctx) error {
	tutorID := userIDFromToken(c)

	var req CreateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.EndTime <= req.StartTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	slot := models.TutorAvailability{
		TutorID:   tutorID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := database.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create availability"})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

func GetMyAvailability(c *fiber.Ctx) error {
	tutorID := userIDFromToken(c)

	var slots []models.TutorAvailability
	database.DB.
		Where("tutor_id = ? AND is_active = true", tutorID).
		Order("day_of_week asc, start_time asc").
		Find(&slots)

	return c.JSON(slots)
}

func DeleteAvailability(c *fiber.Ctx) error {
	tutorID := userIDFromToken(c)
	slotID := c.Params("slotId")

	var slot models.TutorAvailability
	if err := database.DB.First(&slot, "id = ?", slotID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Availability slot not found"})
	}
	if slot.TutorID != tutorID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your availability slot"})
	}

	slot.IsActive = false
	database.DB.Save(&slot)

	return c.JSON(fiber.Map{"message": "Availability slot removed"})
}

func GetMyTutorSessions(c *fiber.Ctx) error {
	tutorID := userIDFromToken(c)

	var sessions []models.ContractSession
	database.DB.
		Preload("Contract.Child").
		Where("tutor_id = ? AND status = ? AND start_time >= ?", tutorID, models.SessionScheduled, time.Now()).
		Order("start_time asc").
		Find(&sessions)

	return c.JSON(sessions)
}

// GetTutorSchedule lets staff check a tutor's booked week when picking a
// tutor for a contract; day names come from the shared mask convention.
func GetTutorSchedule(c *fiber.Ctx) error {
	tutorID := c.Params("tutorId")

	var sessions []models.ContractSession
	database.DB.
		Where("tutor_id = ? AND status = ? AND start_time >= ?", tutorID, models.SessionScheduled, time.Now()).
		Order("start_time asc").
		Find(&sessions)

	days := make([]fiber.Map, 0, len(sessions))
	for _, s := range sessions {
		days = append(days, fiber.Map{
			"session": s,
			"weekday": scheduling.WeekdayName(s.SessionDate.Weekday()),
		})
	}
	return c.JSON(days)
}
