package handlers

import (
	"time"

	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/models"
	"github.com/gofiber/fiber/v2"
)

type AddChildRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=2"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GradeLevel  *string `json:"grade_level,omitempty"`
}

func AddChild(c *fiber.Ctx) error {
	parentID := userIDFromToken(c)

	var req AddChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	child := models.Child{
		ParentID:   parentID,
		FullName:   req.FullName,
		GradeLevel: req.GradeLevel,
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		child.DateOfBirth = &dob
	}

	if err := database.DB.Create(&child).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add child"})
	}
	return c.Status(fiber.StatusCreated).JSON(child)
}

func GetMyChildren(c *fiber.Ctx) error {
	parentID := userIDFromToken(c)

	var children []models.Child
	database.DB.Where("parent_id = ?", parentID).Order("full_name asc").Find(&children)

	return c.JSON(children)
}
