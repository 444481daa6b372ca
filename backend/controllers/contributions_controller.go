package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/models"
	"studyvault/backend/store"
	"studyvault/backend/utils"
)

type ContributionsController struct {
	Pending   *store.PendingStore
	Materials *store.MaterialStore
	Cfg       *config.Config
	Logger    *log.Logger
}

func NewContributionsController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *ContributionsController {
	return &ContributionsController{
		Pending:   store.NewPendingStore(db),
		Materials: store.NewMaterialStore(db),
		Cfg:       cfg,
		Logger:    logger,
	}
}

// MaterialInput is the shared payload for contributions and admin
// uploads. Unit and year_optional stay optional; everything else is
// required before any write happens.
type MaterialInput struct {
	Regulation   int     `json:"regulation" validate:"required,oneof=22 25"`
	Branch       string  `json:"branch" validate:"required,oneof=IT CSE AIML DS ECE EEE MECH CIVIL"`
	Year         int     `json:"year" validate:"required,min=1,max=4"`
	Sem          int     `json:"sem" validate:"required,min=1,max=2"`
	SubjectName  string  `json:"subject_name" validate:"required"`
	Credits      int     `json:"credits" validate:"required,min=1,max=4"`
	MaterialType string  `json:"material_type" validate:"required"`
	MaterialName string  `json:"material_name" validate:"required"`
	URL          string  `json:"url" validate:"required,url"`
	Unit         *int    `json:"unit" validate:"omitempty,min=1,max=5"`
	YearOptional *string `json:"year_optional"`
}

type contributionInput struct {
	MaterialInput
	ContributorName  *string `json:"contributor_name"`
	ContributorEmail *string `json:"contributor_email" validate:"omitempty,email"`
}

// Submit takes a contributor submission into the pending queue. A
// validation failure writes nothing to either table.
func (cc *ContributionsController) Submit(c *fiber.Ctx) error {
	var input contributionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	pending := models.PendingMaterial{
		Regulation:       input.Regulation,
		Branch:           input.Branch,
		Year:             input.Year,
		Sem:              input.Sem,
		SubjectName:      input.SubjectName,
		Credits:          input.Credits,
		MaterialType:     input.MaterialType,
		MaterialName:     input.MaterialName,
		URL:              input.URL,
		Unit:             input.Unit,
		YearOptional:     input.YearOptional,
		ContributorName:  input.ContributorName,
		ContributorEmail: input.ContributorEmail,
	}

	if err := cc.Pending.Submit(&pending); err != nil {
		cc.Logger.Printf("submission failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	return utils.Created(c, fiber.Map{
		"id":     pending.ID,
		"status": pending.Status,
	})
}

// ListPending returns all pending submissions, newest first.
func (cc *ContributionsController) ListPending(c *fiber.Ctx) error {
	pending, err := cc.Pending.ListPending()
	if err != nil {
		cc.Logger.Printf("pending list failed: %v", err)
		return utils.StoreUnavailable(c)
	}
	return utils.Success(c, fiber.StatusOK, pending)
}

func pendingID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// Approve publishes a pending submission, optionally with a reviewer-
// edited URL.
func (cc *ContributionsController) Approve(c *fiber.Ctx) error {
	id, err := pendingID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid pending material ID")
	}

	var input struct {
		URL string `json:"url"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}

	material, err := cc.Pending.Approve(id, input.URL)
	if err != nil {
		if errors.Is(err, store.ErrPendingNotFound) {
			return utils.NotFound(c, "Pending material not found")
		}
		cc.Logger.Printf("approve failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"material": material,
	})
}

// Reject marks a pending submission rejected with optional notes.
func (cc *ContributionsController) Reject(c *fiber.Ctx) error {
	id, err := pendingID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid pending material ID")
	}

	var input struct {
		Notes string `json:"notes"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}

	if err := cc.Pending.Reject(id, input.Notes); err != nil {
		if errors.Is(err, store.ErrPendingNotFound) {
			return utils.NotFound(c, "Pending material not found")
		}
		cc.Logger.Printf("reject failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"status": models.StatusRejected,
	})
}

// Upload inserts a material straight into the live table, bypassing
// moderation. Admin only.
func (cc *ContributionsController) Upload(c *fiber.Ctx) error {
	var input MaterialInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	material := models.Material{
		Regulation:   input.Regulation,
		Branch:       input.Branch,
		Year:         input.Year,
		Sem:          input.Sem,
		SubjectName:  input.SubjectName,
		Credits:      input.Credits,
		MaterialType: input.MaterialType,
		MaterialName: input.MaterialName,
		URL:          input.URL,
		Unit:         input.Unit,
		YearOptional: input.YearOptional,
	}

	if err := cc.Materials.Insert(&material); err != nil {
		cc.Logger.Printf("upload failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	return utils.Created(c, material)
}
