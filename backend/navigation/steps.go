package navigation

import (
	"studyvault/backend/models"
)

// Step identifies one screen of the selection wizard.
type Step string

const (
	StepRegulation   Step = "regulation"
	StepBranch       Step = "branch"
	StepYear         Step = "year"
	StepSemester     Step = "semester"
	StepSubject      Step = "subject"
	StepMaterialType Step = "material_type"
	StepUnits        Step = "units"
	StepYears        Step = "years"
	StepMaterials    Step = "materials" // terminal
)

// NextStep decides which step the wizard shows for the given state.
// The happy path runs regulation → branch → year → semester → subject →
// material type → materials, with a unit detour for types that have
// units and an exam-year detour for PYQs.
func NextStep(state models.SelectionState) Step {
	switch {
	case state.Regulation == nil:
		return StepRegulation
	case state.Branch == nil:
		return StepBranch
	case state.Year == nil:
		return StepYear
	case state.Semester == nil:
		return StepSemester
	case state.Subject == nil:
		return StepSubject
	case state.MaterialType == nil:
		return StepMaterialType
	}

	if *state.MaterialType == models.TypePYQs && state.YearOptional == nil {
		return StepYears
	}

	info, ok := models.TypeInfo(*state.MaterialType)
	if ok && info.HasUnits && state.SelectedUnit == nil {
		return StepUnits
	}

	return StepMaterials
}
