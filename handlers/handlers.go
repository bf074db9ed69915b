package handlers

import (
	"errors"

	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/scheduling"
	"github.com/anjiri1684/tutoring_center/stores"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var validate = validator.New()

var (
	contractService   *scheduling.ContractService
	rescheduleService *scheduling.RescheduleService
)

// InitServices wires the scheduling core to the database; call after
// database.ConnectDB.
func InitServices() {
	store := stores.New(database.DB)
	contractService = scheduling.NewContractService(store)
	rescheduleService = scheduling.NewRescheduleService(store)
}

func userIDFromToken(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := uuid.Parse(claims["user_id"].(string))
	return id
}

// renderSchedulingError maps the core's error taxonomy onto HTTP statuses.
func renderSchedulingError(c *fiber.Ctx, err error) error {
	var serr *scheduling.Error
	if !errors.As(err, &serr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	status := fiber.StatusInternalServerError
	switch serr.Kind {
	case scheduling.KindValidation:
		status = fiber.StatusBadRequest
	case scheduling.KindNotFound:
		status = fiber.StatusNotFound
	case scheduling.KindConflict:
		status = fiber.StatusConflict
	case scheduling.KindCapacity:
		status = fiber.StatusUnprocessableEntity
	case scheduling.KindTransient:
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": serr.Message})
}
