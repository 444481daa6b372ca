package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/models"
	"studyvault/backend/store"
	"studyvault/backend/utils"
)

type MaterialsController struct {
	Store  *store.MaterialStore
	Cfg    *config.Config
	Logger *log.Logger
}

func NewMaterialsController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *MaterialsController {
	return &MaterialsController{Store: store.NewMaterialStore(db), Cfg: cfg, Logger: logger}
}

// GetRegulations serves the static regulation list for the root step.
func (mc *MaterialsController) GetRegulations(c *fiber.Ctx) error {
	regulations := make([]fiber.Map, 0, len(models.Regulations))
	for _, r := range models.Regulations {
		regulations = append(regulations, fiber.Map{
			"code":  r,
			"label": utils.FormatRegulation(r),
		})
	}
	return utils.Success(c, fiber.StatusOK, regulations)
}

// GetBranches serves the static branch list.
func (mc *MaterialsController) GetBranches(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, models.Branches)
}

// scopeFromQuery coerces the regulation/branch/year/semester query
// parameters. String forms like "R22", "2nd Year" and "Sem 1" are
// accepted and normalized to integers.
func (mc *MaterialsController) scopeFromQuery(c *fiber.Ctx) (store.Scope, bool) {
	regulation := c.Query("regulation")
	branch := c.Query("branch")
	year := c.Query("year")
	semester := c.Query("semester")

	if regulation == "" || branch == "" || year == "" || semester == "" {
		return store.Scope{}, false
	}

	reg, err := utils.ParseNumeric(regulation)
	if err != nil {
		return store.Scope{}, false
	}
	yr, err := utils.ParseNumeric(year)
	if err != nil {
		return store.Scope{}, false
	}
	sem, err := utils.ParseNumeric(semester)
	if err != nil {
		return store.Scope{}, false
	}

	return store.Scope{Regulation: reg, Branch: branch, Year: yr, Sem: sem}, true
}

// incompleteSelection is the transition guard: a step reached without
// its upstream parameters sends the client back to the root step.
func incompleteSelection(c *fiber.Ctx) error {
	return utils.ErrorWithRedirect(c, fiber.StatusBadRequest,
		"Selection incomplete. Please start from the beginning.", "/")
}

func (mc *MaterialsController) storeError(c *fiber.Ctx, err error) error {
	mc.Logger.Printf("store query failed: %v", err)
	return utils.StoreUnavailable(c)
}

// GetSubjects lists the distinct subjects under the selected scope.
func (mc *MaterialsController) GetSubjects(c *fiber.Ctx) error {
	scope, ok := mc.scopeFromQuery(c)
	if !ok {
		return incompleteSelection(c)
	}

	subjects, err := mc.Store.ListSubjects(scope)
	if err != nil {
		return mc.storeError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, subjects)
}

// GetMaterialTypes lists the material types available for a subject,
// annotated with icon and has_units from the static catalog.
func (mc *MaterialsController) GetMaterialTypes(c *fiber.Ctx) error {
	scope, ok := mc.scopeFromQuery(c)
	subject := c.Query("subject")
	if !ok || subject == "" {
		return incompleteSelection(c)
	}

	types, err := mc.Store.ListAvailableMaterialTypes(scope, subject)
	if err != nil {
		return mc.storeError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, types)
}

// GetUnits lists the units available for a subject and material type.
func (mc *MaterialsController) GetUnits(c *fiber.Ctx) error {
	scope, ok := mc.scopeFromQuery(c)
	subject := c.Query("subject")
	materialType := c.Query("material_type")
	if !ok || subject == "" || materialType == "" {
		return incompleteSelection(c)
	}

	units, err := mc.Store.ListAvailableUnits(scope, subject, materialType)
	if err != nil {
		return mc.storeError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, units)
}

// GetYears lists the PYQ exam years for a subject, most recent first.
func (mc *MaterialsController) GetYears(c *fiber.Ctx) error {
	scope, ok := mc.scopeFromQuery(c)
	subject := c.Query("subject")
	materialType := c.Query("material_type")
	if materialType == "" {
		materialType = models.TypePYQs
	}
	if !ok || subject == "" {
		return incompleteSelection(c)
	}

	years, err := mc.Store.ListAvailableYears(scope, subject, materialType)
	if err != nil {
		return mc.storeError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, years)
}

// GetMaterials lists the materials matching the full selection. The
// unit and year filters apply only when supplied. Each row carries a
// download_url with known Drive/Docs links rewritten to a
// direct-download variant.
func (mc *MaterialsController) GetMaterials(c *fiber.Ctx) error {
	scope, ok := mc.scopeFromQuery(c)
	subject := c.Query("subject")
	materialType := c.Query("material_type")
	if !ok || subject == "" || materialType == "" {
		return incompleteSelection(c)
	}

	var unit *int
	if u := c.QueryInt("unit", 0); u > 0 {
		unit = &u
	}
	// The year key already carries the academic year for the scope, so
	// the PYQ exam-year filter travels under its own key.
	var yearOptional *string
	if y := c.Query("year_optional"); y != "" {
		yearOptional = &y
	}

	materials, err := mc.Store.ListMaterials(scope, subject, materialType, unit, yearOptional)
	if err != nil {
		return mc.storeError(c, err)
	}

	result := make([]fiber.Map, 0, len(materials))
	for _, m := range materials {
		result = append(result, fiber.Map{
			"id":            m.ID,
			"material_name": m.MaterialName,
			"material_type": m.MaterialType,
			"subject_name":  m.SubjectName,
			"url":           m.URL,
			"download_url":  utils.DownloadURL(m.URL),
			"is_youtube":    utils.IsYouTubeURL(m.URL),
			"unit":          m.Unit,
			"year_optional": m.YearOptional,
			"created_at":    m.CreatedAt,
		})
	}
	return utils.Success(c, fiber.StatusOK, result)
}
