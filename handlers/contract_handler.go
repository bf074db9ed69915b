package handlers

import (
	"time"

	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/notifications"
	"github.com/anjiri1684/tutoring_center/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateContractRequest struct {
	ParentID       string  `json:"parent_id" validate:"required,uuid"`
	ChildID        string  `json:"child_id" validate:"required,uuid"`
	PackageID      string  `json:"package_id" validate:"required,uuid"`
	CenterID       string  `json:"center_id" validate:"required,uuid"`
	MainTutorID    *string `json:"main_tutor_id,omitempty" validate:"omitempty,uuid"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	StartTime      string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string  `json:"end_time" validate:"required,datetime=15:04"`
	DaysOfWeekMask int     `json:"days_of_week_mask" validate:"required"`
}

func CreateContract(c *fiber.Ctx) error {
	var req CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	parentID, _ := uuid.Parse(req.ParentID)
	childID, _ := uuid.Parse(req.ChildID)
	packageID, _ := uuid.Parse(req.PackageID)
	centerID, _ := uuid.Parse(req.CenterID)
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	var mainTutorID *uuid.UUID
	if req.MainTutorID != nil {
		id, _ := uuid.Parse(*req.MainTutorID)
		mainTutorID = &id
	}

	contract, err := contractService.Create(c.Context(), scheduling.CreateContractInput{
		ParentID:       parentID,
		ChildID:        childID,
		PackageID:      packageID,
		CenterID:       centerID,
		MainTutorID:    mainTutorID,
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		DaysOfWeekMask: req.DaysOfWeekMask,
	})
	if err != nil {
		return renderSchedulingError(c, err)
	}

	go func() {
		var parent models.User
		if err := database.DB.First(&parent, "id = ?", contract.ParentID).Error; err == nil {
			notifications.SendEmail(parent.FullName, parent.Email, "Your Contract Has Been Created",
				"<h1>Contract "+contract.ContractNumber+"</h1><p>Your tutoring contract has been created. Sessions will appear on your dashboard once the contract is activated.</p>")
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(contract)
}

type UpdateContractStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func UpdateContractStatus(c *fiber.Ctx) error {
	contractID, err := uuid.Parse(c.Params("contractId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contract id"})
	}

	var req UpdateContractStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	contract, err := contractService.UpdateStatus(c.Context(), contractID, req.Status)
	if err != nil {
		return renderSchedulingError(c, err)
	}
	return c.JSON(contract)
}

type AssignTutorsRequest struct {
	MainTutorID      string  `json:"main_tutor_id" validate:"required,uuid"`
	AssistantTutorID *string `json:"assistant_tutor_id,omitempty" validate:"omitempty,uuid"`
}

func AssignTutors(c *fiber.Ctx) error {
	contractID, err := uuid.Parse(c.Params("contractId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contract id"})
	}

	var req AssignTutorsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mainTutorID, _ := uuid.Parse(req.MainTutorID)
	var assistantTutorID *uuid.UUID
	if req.AssistantTutorID != nil {
		id, _ := uuid.Parse(*req.AssistantTutorID)
		assistantTutorID = &id
	}

	contract, err := contractService.AssignTutors(c.Context(), contractID, mainTutorID, assistantTutorID)
	if err != nil {
		return renderSchedulingError(c, err)
	}
	return c.JSON(contract)
}

func GetContract(c *fiber.Ctx) error {
	contractID := c.Params("contractId")

	var contract models.Contract
	if err := database.DB.
		Preload("Parent").
		Preload("Child").
		Preload("Package").
		Preload("Center").
		First(&contract, "id = ?", contractID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contract not found"})
	}

	var sessions []models.ContractSession
	database.DB.
		Where("contract_id = ?", contract.ID).
		Order("session_date asc, start_time asc").
		Find(&sessions)

	return c.JSON(fiber.Map{"contract": contract, "sessions": sessions})
}

func GetMyContracts(c *fiber.Ctx) error {
	parentID := userIDFromToken(c)

	var contracts []models.Contract
	database.DB.
		Preload("Child").
		Preload("Package").
		Preload("Center").
		Where("parent_id = ?", parentID).
		Order("created_at desc").
		Find(&contracts)

	return c.JSON(contracts)
}

func ListContracts(c *fiber.Ctx) error {
	var contracts []models.Contract
	q := database.DB.
		Preload("Parent").
		Preload("Child").
		Preload("Package").
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	q.Find(&contracts)

	return c.JSON(contracts)
}

func GetMyContractSessions(c *fiber.Ctx) error {
	parentID := userIDFromToken(c)
	contractID := c.Params("contractId")

	var contract models.Contract
	if err := database.DB.First(&contract, "id = ?", contractID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contract not found"})
	}
	if contract.ParentID != parentID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your contract"})
	}

	var sessions []models.ContractSession
	database.DB.
		Where("contract_id = ?", contract.ID).
		Order("session_date asc, start_time asc").
		Find(&sessions)

	return c.JSON(fiber.Map{"contract": contract, "sessions": sessions})
}
