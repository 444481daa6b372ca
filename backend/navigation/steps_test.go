package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyvault/backend/models"
)

func TestNextStepHappyPath(t *testing.T) {
	var state models.SelectionState
	assert.Equal(t, StepRegulation, NextStep(state))

	state.Regulation = strPtr("R22")
	assert.Equal(t, StepBranch, NextStep(state))

	state.Branch = strPtr("CSE")
	assert.Equal(t, StepYear, NextStep(state))

	state.Year = strPtr("2nd Year")
	assert.Equal(t, StepSemester, NextStep(state))

	state.Semester = strPtr("Sem 1")
	assert.Equal(t, StepSubject, NextStep(state))

	state.Subject = strPtr("DBMS")
	assert.Equal(t, StepMaterialType, NextStep(state))

	state.MaterialType = strPtr(models.TypeSyllabus)
	assert.Equal(t, StepMaterials, NextStep(state))
}

func TestNextStepUnitsDetour(t *testing.T) {
	state := models.SelectionState{
		Regulation:   strPtr("R22"),
		Branch:       strPtr("CSE"),
		Year:         strPtr("2nd Year"),
		Semester:     strPtr("Sem 1"),
		Subject:      strPtr("DBMS"),
		MaterialType: strPtr(models.TypeNotes),
	}
	assert.Equal(t, StepUnits, NextStep(state))

	state.SelectedUnit = intPtr(2)
	assert.Equal(t, StepMaterials, NextStep(state))
}

func TestNextStepYearsDetour(t *testing.T) {
	state := models.SelectionState{
		Regulation:   strPtr("R22"),
		Branch:       strPtr("CSE"),
		Year:         strPtr("2nd Year"),
		Semester:     strPtr("Sem 1"),
		Subject:      strPtr("DBMS"),
		MaterialType: strPtr(models.TypePYQs),
	}
	assert.Equal(t, StepYears, NextStep(state))

	state.YearOptional = strPtr("2024")
	assert.Equal(t, StepMaterials, NextStep(state))
}

func TestNextStepYouTubeHasNoUnits(t *testing.T) {
	state := models.SelectionState{
		Regulation:   strPtr("R22"),
		Branch:       strPtr("CSE"),
		Year:         strPtr("2nd Year"),
		Semester:     strPtr("Sem 1"),
		Subject:      strPtr("DBMS"),
		MaterialType: strPtr(models.TypeYouTubeVideos),
	}
	assert.Equal(t, StepMaterials, NextStep(state))
}

func TestNextStepUncataloguedType(t *testing.T) {
	state := models.SelectionState{
		Regulation:   strPtr("R22"),
		Branch:       strPtr("CSE"),
		Year:         strPtr("2nd Year"),
		Semester:     strPtr("Sem 1"),
		Subject:      strPtr("DBMS"),
		MaterialType: strPtr("Old Imported Type"),
	}
	assert.Equal(t, StepMaterials, NextStep(state))
}
