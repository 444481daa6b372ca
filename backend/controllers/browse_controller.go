package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/models"
	"studyvault/backend/navigation"
	"studyvault/backend/store"
	"studyvault/backend/utils"
)

// BrowseController resolves bookmarked deep links. A path like
// /r22/cse/2nd-year/sem-1/dbms/notes/units/2 is decoded segment by
// segment; subject and material-type slugs are matched back against
// the store because stored names keep their original casing.
type BrowseController struct {
	Store  *store.MaterialStore
	Cfg    *config.Config
	Logger *log.Logger
}

func NewBrowseController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *BrowseController {
	return &BrowseController{Store: store.NewMaterialStore(db), Cfg: cfg, Logger: logger}
}

func unknownPath(c *fiber.Ctx, message string) error {
	return utils.ErrorWithRedirect(c, fiber.StatusNotFound, message, "/")
}

// Resolve decodes a wizard deep link into the canonical selection and
// the step the client should render. Any slug that does not resolve
// sends the user back to the root step.
func (bc *BrowseController) Resolve(c *fiber.Ctx) error {
	raw := strings.Trim(c.Params("*"), "/")

	var segments []string
	if raw != "" {
		segments = strings.Split(raw, "/")
	}
	if len(segments) > 8 {
		return unknownPath(c, "Unknown page")
	}

	var state models.SelectionState

	if len(segments) >= 1 {
		reg, err := utils.ParseNumeric(segments[0])
		if err != nil || !validRegulation(reg) {
			return unknownPath(c, "Unknown regulation")
		}
		label := utils.FormatRegulation(reg)
		state.Regulation = &label
	}
	if len(segments) >= 2 {
		branch, ok := navigation.ResolveSlug(segments[1], models.Branches)
		if !ok {
			return unknownPath(c, "Unknown branch")
		}
		state.Branch = &branch
	}
	if len(segments) >= 3 {
		year, err := utils.ParseNumeric(segments[2])
		if err != nil || year < models.MinYear || year > models.MaxYear {
			return unknownPath(c, "Unknown year")
		}
		label := utils.FormatYear(year)
		state.Year = &label
	}
	if len(segments) >= 4 {
		sem, err := utils.ParseNumeric(segments[3])
		if err != nil || sem < models.MinSem || sem > models.MaxSem {
			return unknownPath(c, "Unknown semester")
		}
		label := utils.FormatSemester(sem)
		state.Semester = &label
	}

	var scope store.Scope
	if len(segments) >= 4 {
		decoded, err := navigation.DecodeScope(segments[0], segments[1], segments[2], segments[3])
		if err != nil {
			return unknownPath(c, "Unknown page")
		}
		scope = store.Scope(decoded)
	}

	if len(segments) >= 5 {
		subjects, err := bc.Store.ListSubjects(scope)
		if err != nil {
			bc.Logger.Printf("store query failed: %v", err)
			return utils.StoreUnavailable(c)
		}
		names := make([]string, 0, len(subjects))
		for _, s := range subjects {
			names = append(names, s.Name)
		}
		subject, ok := navigation.ResolveSlug(segments[4], names)
		if !ok {
			return unknownPath(c, "Unknown subject")
		}
		state.Subject = &subject
	}

	if len(segments) >= 6 {
		types, err := bc.Store.ListAvailableMaterialTypes(scope, *state.Subject)
		if err != nil {
			bc.Logger.Printf("store query failed: %v", err)
			return utils.StoreUnavailable(c)
		}
		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, t.Name)
		}
		materialType, ok := navigation.ResolveSlug(segments[5], names)
		if !ok {
			return unknownPath(c, "Unknown material type")
		}
		state.MaterialType = &materialType
	}

	if len(segments) >= 7 {
		info, _ := models.TypeInfo(*state.MaterialType)
		switch segments[6] {
		case "units":
			if !info.HasUnits {
				return unknownPath(c, "Unknown page")
			}
			if len(segments) == 8 {
				unit, err := utils.ParseNumeric(segments[7])
				if err != nil || unit < models.MinUnit || unit > models.MaxUnit {
					return unknownPath(c, "Unknown unit")
				}
				state.SelectedUnit = &unit
			}
		case "years":
			if *state.MaterialType != models.TypePYQs {
				return unknownPath(c, "Unknown page")
			}
			if len(segments) == 8 {
				years, err := bc.Store.ListAvailableYears(scope, *state.Subject, *state.MaterialType)
				if err != nil {
					bc.Logger.Printf("store query failed: %v", err)
					return utils.StoreUnavailable(c)
				}
				year, ok := navigation.ResolveSlug(segments[7], years)
				if !ok {
					return unknownPath(c, "Unknown year")
				}
				state.YearOptional = &year
			}
		default:
			return unknownPath(c, "Unknown page")
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"selection": state,
		"step":      navigation.NextStep(state),
		"path":      navigation.EncodePath(state),
	})
}

func validRegulation(reg int) bool {
	for _, r := range models.Regulations {
		if reg == r {
			return true
		}
	}
	return false
}
