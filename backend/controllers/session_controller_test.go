package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type selectionResponse struct {
	Selection  map[string]interface{} `json:"selection"`
	Breadcrumb string                 `json:"breadcrumb"`
	Step       string                 `json:"step"`
	Path       string                 `json:"path"`
}

func patchSelection(t *testing.T, key string, body map[string]interface{}) selectionResponse {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("PATCH", "/api/session/selection", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Key", key)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result selectionResponse
	decodeData(t, resp, &result)
	return result
}

func TestGetSelectionDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/session/selection", nil)
	req.Header.Set("X-Session-Key", "fresh-session")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result selectionResponse
	decodeData(t, resp, &result)
	assert.Nil(t, result.Selection["regulation"])
	assert.Equal(t, "regulation", result.Step)
	assert.Equal(t, "", result.Breadcrumb)
}

func TestGetSelectionMissingKey(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/session/selection", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateSelectionWalksSteps(t *testing.T) {
	key := "walk-session"

	result := patchSelection(t, key, map[string]interface{}{"regulation": "R22"})
	assert.Equal(t, "branch", result.Step)
	assert.Equal(t, "R22", result.Breadcrumb)

	result = patchSelection(t, key, map[string]interface{}{"branch": "CSE"})
	assert.Equal(t, "year", result.Step)

	result = patchSelection(t, key, map[string]interface{}{"year": "2nd Year"})
	assert.Equal(t, "semester", result.Step)

	result = patchSelection(t, key, map[string]interface{}{"semester": "Sem 1"})
	assert.Equal(t, "subject", result.Step)
	assert.Equal(t, "R22 • CSE • 2nd Year • Sem 1", result.Breadcrumb)

	result = patchSelection(t, key, map[string]interface{}{"subject": "DBMS"})
	assert.Equal(t, "material_type", result.Step)

	result = patchSelection(t, key, map[string]interface{}{"materialType": "Notes"})
	assert.Equal(t, "units", result.Step)

	result = patchSelection(t, key, map[string]interface{}{"selectedUnit": 2})
	assert.Equal(t, "materials", result.Step)
	assert.Equal(t, "/r22/cse/2nd-year/sem-1/dbms/notes/units/2", result.Path)
}

func TestUpdateSelectionClearsDependents(t *testing.T) {
	key := "clear-session"

	patchSelection(t, key, map[string]interface{}{
		"regulation": "R22", "branch": "CSE", "year": "2nd Year",
		"semester": "Sem 1", "subject": "DBMS", "materialType": "Notes",
	})
	result := patchSelection(t, key, map[string]interface{}{"selectedUnit": 3})
	assert.Equal(t, float64(3), result.Selection["selectedUnit"])

	// Changing the branch invalidates everything downstream.
	result = patchSelection(t, key, map[string]interface{}{"branch": "ECE"})
	assert.Equal(t, "ECE", result.Selection["branch"])
	assert.Nil(t, result.Selection["year"])
	assert.Nil(t, result.Selection["subject"])
	assert.Nil(t, result.Selection["materialType"])
	assert.Nil(t, result.Selection["selectedUnit"])
	assert.Equal(t, "year", result.Step)
}

func TestUpdateSelectionTypeWithoutUnitsClearsUnit(t *testing.T) {
	key := "unit-clear-session"

	patchSelection(t, key, map[string]interface{}{
		"regulation": "R22", "branch": "CSE", "year": "2nd Year",
		"semester": "Sem 1", "subject": "DBMS", "materialType": "Notes",
	})
	patchSelection(t, key, map[string]interface{}{"selectedUnit": 1})

	result := patchSelection(t, key, map[string]interface{}{"materialType": "Syllabus"})
	assert.Equal(t, "Syllabus", result.Selection["materialType"])
	assert.Nil(t, result.Selection["selectedUnit"])
	assert.Equal(t, "materials", result.Step)
}

func TestUpdateSelectionPYQDetour(t *testing.T) {
	key := "pyq-session"

	patchSelection(t, key, map[string]interface{}{
		"regulation": "R22", "branch": "CSE", "year": "2nd Year",
		"semester": "Sem 1", "subject": "DBMS",
	})
	result := patchSelection(t, key, map[string]interface{}{"materialType": "PYQs"})
	assert.Equal(t, "years", result.Step)

	result = patchSelection(t, key, map[string]interface{}{"yearOptional": "2024"})
	assert.Equal(t, "materials", result.Step)
}

func TestResetSelection(t *testing.T) {
	key := "reset-session"
	patchSelection(t, key, map[string]interface{}{"regulation": "R22", "branch": "CSE"})

	req := httptest.NewRequest("DELETE", "/api/session/selection", nil)
	req.Header.Set("X-Session-Key", key)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/session/selection", nil)
	req.Header.Set("X-Session-Key", key)
	resp, err = app.Test(req)
	assert.NoError(t, err)

	var result selectionResponse
	decodeData(t, resp, &result)
	assert.Nil(t, result.Selection["regulation"])
	assert.Equal(t, "regulation", result.Step)
}
