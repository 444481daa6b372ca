package selection

import (
	"strings"

	"gorm.io/gorm"

	"studyvault/backend/models"
)

// Update carries the fields a client wants to change. Nil means
// "leave as is"; setters run in wizard order so an upstream change
// always clears its dependents before a downstream value is applied.
type Update struct {
	Regulation   *string `json:"regulation"`
	Branch       *string `json:"branch"`
	Year         *string `json:"year"`
	Semester     *string `json:"semester"`
	Subject      *string `json:"subject"`
	MaterialType *string `json:"materialType"`
	SelectedUnit *int    `json:"selectedUnit"`
	YearOptional *string `json:"yearOptional"`
}

// Controller owns the in-memory view of a session's wizard state and
// persists every mutation through the Store.
type Controller struct {
	Store *Store
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{Store: NewStore(db)}
}

// Get loads the current state for a session.
func (c *Controller) Get(sessionKey string) (models.SelectionState, error) {
	return c.Store.Get(sessionKey)
}

// Apply loads the session state, applies the update through the typed
// setters and persists the result.
func (c *Controller) Apply(sessionKey string, upd Update) (models.SelectionState, error) {
	state, err := c.Store.Get(sessionKey)
	if err != nil {
		return state, err
	}

	if upd.Regulation != nil {
		SetRegulation(&state, *upd.Regulation)
	}
	if upd.Branch != nil {
		SetBranch(&state, *upd.Branch)
	}
	if upd.Year != nil {
		SetYear(&state, *upd.Year)
	}
	if upd.Semester != nil {
		SetSemester(&state, *upd.Semester)
	}
	if upd.Subject != nil {
		SetSubject(&state, *upd.Subject)
	}
	if upd.MaterialType != nil {
		info, _ := models.TypeInfo(*upd.MaterialType)
		SetMaterialType(&state, *upd.MaterialType, info.HasUnits)
	}
	if upd.SelectedUnit != nil {
		SetSelectedUnit(&state, *upd.SelectedUnit)
	}
	if upd.YearOptional != nil {
		SetYearOptional(&state, *upd.YearOptional)
	}

	if err := c.Store.Save(&state); err != nil {
		return state, err
	}
	return state, nil
}

// Reset clears both the in-memory and the persisted state.
func (c *Controller) Reset(sessionKey string) error {
	return c.Store.Clear(sessionKey)
}

// SetRegulation picks a regulation and clears every dependent choice.
func SetRegulation(state *models.SelectionState, value string) {
	state.Regulation = &value
	state.Branch = nil
	clearFromYear(state)
}

// SetBranch picks a branch and clears every dependent choice.
func SetBranch(state *models.SelectionState, value string) {
	state.Branch = &value
	clearFromYear(state)
}

// SetYear picks an academic year and clears every dependent choice.
func SetYear(state *models.SelectionState, value string) {
	state.Year = &value
	state.Semester = nil
	clearFromSubject(state)
}

// SetSemester picks a semester and clears every dependent choice.
func SetSemester(state *models.SelectionState, value string) {
	state.Semester = &value
	clearFromSubject(state)
}

// SetSubject picks a subject and clears the material-type choices.
func SetSubject(state *models.SelectionState, value string) {
	state.Subject = &value
	state.MaterialType = nil
	state.SelectedUnit = nil
	state.YearOptional = nil
}

// SetMaterialType picks a material type. A type without units
// invalidates any previously selected unit, and only PYQs keeps a
// year filter.
func SetMaterialType(state *models.SelectionState, name string, hasUnits bool) {
	state.MaterialType = &name
	if !hasUnits {
		state.SelectedUnit = nil
	}
	if name != models.TypePYQs {
		state.YearOptional = nil
	}
}

// SetSelectedUnit picks a unit for a type that has them.
func SetSelectedUnit(state *models.SelectionState, unit int) {
	state.SelectedUnit = &unit
}

// SetYearOptional picks the PYQ exam-year filter.
func SetYearOptional(state *models.SelectionState, year string) {
	state.YearOptional = &year
}

// Breadcrumb joins the non-null upstream selections for display.
func Breadcrumb(state models.SelectionState) string {
	var parts []string
	for _, v := range []*string{state.Regulation, state.Branch, state.Year, state.Semester} {
		if v != nil && *v != "" {
			parts = append(parts, *v)
		}
	}
	return strings.Join(parts, " • ")
}

func clearFromYear(state *models.SelectionState) {
	state.Year = nil
	state.Semester = nil
	clearFromSubject(state)
}

func clearFromSubject(state *models.SelectionState) {
	state.Subject = nil
	state.MaterialType = nil
	state.SelectedUnit = nil
	state.YearOptional = nil
}
