package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"studyvault/backend/models"
)

const androidUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"

func TestTrackOpen(t *testing.T) {
	body, _ := json.Marshal(map[string]interface{}{
		"regulation":    22,
		"branch":        "CSE",
		"year":          2,
		"sem":           1,
		"subject_name":  "DBMS",
		"material_type": "Notes",
		"material_name": "Unit 1 Notes",
		"url":           "https://drive.google.com/file/d/abc123/view",
		"unit":          1,
	})
	req := httptest.NewRequest("POST", "/api/track/open", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var open models.FileOpen
	assert.NoError(t, db.Order("id DESC").First(&open).Error)
	assert.Equal(t, "DBMS", open.SubjectName)
	assert.Equal(t, "mobile", open.DeviceType)
	assert.Equal(t, "Chrome", open.Browser)
	assert.Equal(t, "Android", open.OS)
}

func TestTrackOpenBadBodyStillNoContent(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/track/open", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAnalyticsSummary(t *testing.T) {
	// Seed a second open from a desktop browser.
	body, _ := json.Marshal(map[string]interface{}{
		"regulation":    22,
		"branch":        "CSE",
		"year":          2,
		"sem":           1,
		"subject_name":  "CN",
		"material_type": "Syllabus",
		"material_name": "CN Syllabus",
		"url":           "https://docs.google.com/document/d/syl1/edit",
	})
	req := httptest.NewRequest("POST", "/api/track/open", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Gecko/20100101 Firefox/121.0")
	_, err := app.Test(req)
	assert.NoError(t, err)

	req = httptest.NewRequest("GET", "/api/admin/analytics/summary", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary struct {
		TotalOpens   int64 `json:"total_opens"`
		TodayOpens   int64 `json:"today_opens"`
		WeeklyOpens  int64 `json:"weekly_opens"`
		TopSubjects  []struct {
			Name  string `json:"name"`
			Count int64  `json:"count"`
		} `json:"top_subjects"`
		RecentActivity []models.FileOpen `json:"recent_activity"`
	}
	decodeData(t, resp, &summary)

	assert.GreaterOrEqual(t, summary.TotalOpens, int64(1))
	assert.Equal(t, summary.TotalOpens, summary.TodayOpens)
	assert.Equal(t, summary.TotalOpens, summary.WeeklyOpens)
	assert.NotEmpty(t, summary.TopSubjects)
	assert.NotEmpty(t, summary.RecentActivity)
}

func TestAnalyticsSummaryRequiresToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/admin/analytics/summary", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAnalyticsSummaryStoreFailure(t *testing.T) {
	// A failing aggregate must come back as 503, never as zeros.
	assert.NoError(t, db.Migrator().DropTable(&models.FileOpen{}))
	defer func() {
		assert.NoError(t, db.AutoMigrate(&models.FileOpen{}))
	}()

	req := httptest.NewRequest("GET", "/api/admin/analytics/summary", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
