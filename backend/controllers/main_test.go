package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/models"
	"studyvault/backend/routes"
	"studyvault/backend/utils"
)

var (
	app        *fiber.App
	db         *gorm.DB
	cfg        *config.Config
	adminToken string
)

func TestMain(m *testing.M) {
	setup()
	os.Exit(m.Run())
}

func setup() {
	cfg = &config.Config{
		AdminSecret: "testsecret",
		JWTSecret:   "testsecret",
		ServerPort:  "8080",
	}

	var err error
	db, err = gorm.Open(sqlite.Open("file:controllers?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	if err := utils.Migrate(db); err != nil {
		panic(err)
	}

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg, utils.InitLogger())

	seedMaterials()
	adminToken = login()
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// seedMaterials loads the fixture set the wizard tests browse:
// DBMS notes across three units, DBMS PYQs for two exam years and a
// second subject to exercise sorting.
func seedMaterials() {
	materials := []models.Material{
		{Regulation: 22, Branch: "CSE", Year: 2, Sem: 1, SubjectName: "DBMS", Credits: 4,
			MaterialType: models.TypeNotes, MaterialName: "Unit 1 Notes",
			URL: "https://drive.google.com/file/d/abc123/view", Unit: intPtr(1)},
		{Regulation: 22, Branch: "CSE", Year: 2, Sem: 1, SubjectName: "DBMS", Credits: 4,
			MaterialType: models.TypeNotes, MaterialName: "Unit 2 Notes",
			URL: "https://drive.google.com/file/d/def456/view", Unit: intPtr(2)},
		{Regulation: 22, Branch: "CSE", Year: 2, Sem: 1, SubjectName: "DBMS", Credits: 4,
			MaterialType: models.TypeNotes, MaterialName: "Unit 3 Notes",
			URL: "https://drive.google.com/file/d/ghi789/view", Unit: intPtr(3)},
		{Regulation: 22, Branch: "CSE", Year: 2, Sem: 1, SubjectName: "DBMS", Credits: 4,
			MaterialType: models.TypePYQs, MaterialName: "Mid-1 Paper",
			URL: "https://drive.google.com/file/d/pyq2024/view", YearOptional: strPtr("2024")},
		{Regulation: 22, Branch: "CSE", Year: 2, Sem: 1, SubjectName: "DBMS", Credits: 4,
			MaterialType: models.TypePYQs, MaterialName: "Sem-End Paper",
			URL: "https://drive.google.com/file/d/pyq2023/view", YearOptional: strPtr("2023")},
		{Regulation: 22, Branch: "CSE", Year: 2, Sem: 1, SubjectName: "CN", Credits: 3,
			MaterialType: models.TypeSyllabus, MaterialName: "CN Syllabus",
			URL: "https://docs.google.com/document/d/syl1/edit"},
	}
	for i := range materials {
		if err := db.Create(&materials[i]).Error; err != nil {
			panic(err)
		}
	}
}

func login() string {
	body, _ := json.Marshal(map[string]string{"secret": "testsecret"})
	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		panic(err)
	}
	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	return result.Data.Token
}

// decodeData unmarshals the success envelope's data field into out.
func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
	}
}
