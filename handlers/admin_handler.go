package handlers

import (
	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/models"
	"github.com/gofiber/fiber/v2"
)

type CreatePackageRequest struct {
	Name          string  `json:"name" validate:"required"`
	SessionCount  int     `json:"session_count" validate:"required,min=1"`
	MaxReschedule int     `json:"max_reschedule" validate:"min=0"`
	Price         float64 `json:"price" validate:"required,min=0"`
	Currency      string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

func CreatePackage(c *fiber.Ctx) error {
	var req CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	pkg := models.Package{
		Name:          req.Name,
		SessionCount:  req.SessionCount,
		MaxReschedule: req.MaxReschedule,
		Price:         req.Price,
		Currency:      currency,
		IsActive:      true,
	}
	if err := database.DB.Create(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create package"})
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func ListPackages(c *fiber.Ctx) error {
	var packages []models.Package
	database.DB.Where("is_active = true").Order("price asc").Find(&packages)
	return c.JSON(packages)
}

type CreateCenterRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func CreateCenter(c *fiber.Ctx) error {
	var req CreateCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	center := models.Center{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}
	if err := database.DB.Create(&center).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create center"})
	}
	return c.Status(fiber.StatusCreated).JSON(center)
}

func ListCenters(c *fiber.Ctx) error {
	var centers []models.Center
	database.DB.Where("is_active = true").Order("name asc").Find(&centers)
	return c.JSON(centers)
}

func ListTutors(c *fiber.Ctx) error {
	var tutors []models.Tutor
	database.DB.Preload("User").Where("is_active = true").Find(&tutors)
	return c.JSON(tutors)
}
