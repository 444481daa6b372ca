package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/controllers"
	"studyvault/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Auth routes
	authController := controllers.NewAuthController(cfg, logger)
	app.Post("/api/admin/login", authController.AdminLogin)

	// Middleware
	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Wizard option routes
	materialsController := controllers.NewMaterialsController(db, cfg, logger)
	app.Get("/api/regulations", materialsController.GetRegulations)
	app.Get("/api/branches", materialsController.GetBranches)
	app.Get("/api/subjects", materialsController.GetSubjects)
	app.Get("/api/material-types", materialsController.GetMaterialTypes)
	app.Get("/api/units", materialsController.GetUnits)
	app.Get("/api/years", materialsController.GetYears)
	app.Get("/api/materials", materialsController.GetMaterials)

	// Deep-link resolution
	browseController := controllers.NewBrowseController(db, cfg, logger)
	app.Get("/api/resolve/*", browseController.Resolve)

	// Session selection state
	sessionController := controllers.NewSessionController(db, cfg, logger)
	app.Get("/api/session/selection", sessionController.GetSelection)
	app.Patch("/api/session/selection", sessionController.UpdateSelection)
	app.Delete("/api/session/selection", sessionController.ResetSelection)

	// Contribution routes
	contributionsController := controllers.NewContributionsController(db, cfg, logger)
	app.Post("/api/contribute", contributionsController.Submit)

	// Analytics
	analyticsController := controllers.NewAnalyticsController(db, cfg, logger)
	app.Post("/api/track/open", analyticsController.TrackOpen)

	// Admin routes for moderation and uploads
	admin := app.Group("/api/admin", adminMiddleware)
	admin.Get("/pending", contributionsController.ListPending)
	admin.Post("/pending/:id/approve", contributionsController.Approve)
	admin.Post("/pending/:id/reject", contributionsController.Reject)
	admin.Post("/materials", contributionsController.Upload)
	admin.Get("/analytics/summary", analyticsController.GetSummary)
}
