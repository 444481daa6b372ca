package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/models"
	"studyvault/backend/utils"
)

type AnalyticsController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg, Logger: logger}
}

type fileOpenInput struct {
	Regulation   int    `json:"regulation"`
	Branch       string `json:"branch"`
	Year         int    `json:"year"`
	Sem          int    `json:"sem"`
	SubjectName  string `json:"subject_name"`
	MaterialType string `json:"material_type"`
	MaterialName string `json:"material_name"`
	URL          string `json:"url"`
	Unit         *int   `json:"unit"`
}

// TrackOpen records a material being opened. This is fire-and-forget:
// the response is always 204 and insert failures are only logged, so a
// tracking problem never breaks the reading flow.
func (ac *AnalyticsController) TrackOpen(c *fiber.Ctx) error {
	var input fileOpenInput
	if err := c.BodyParser(&input); err != nil {
		return utils.NoContent(c)
	}

	ua := c.Get("User-Agent")
	open := models.FileOpen{
		Regulation:   input.Regulation,
		Branch:       input.Branch,
		Year:         input.Year,
		Sem:          input.Sem,
		SubjectName:  input.SubjectName,
		MaterialType: input.MaterialType,
		MaterialName: input.MaterialName,
		URL:          input.URL,
		Unit:         input.Unit,
		DeviceType:   deviceTypeFromUA(ua),
		Browser:      browserFromUA(ua),
		OS:           osFromUA(ua),
		UserAgent:    ua,
	}

	if err := ac.DB.Create(&open).Error; err != nil {
		ac.Logger.Printf("file open tracking failed: %v", err)
	}
	return utils.NoContent(c)
}

type nameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func (ac *AnalyticsController) topCounts(column string, limit int) ([]nameCount, error) {
	var rows []nameCount
	err := ac.DB.Model(&models.FileOpen{}).
		Select(column + " AS name, COUNT(*) AS count").
		Where(column + " <> ''").
		Group(column).
		Order("count DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetSummary aggregates the file-open log for the admin dashboard.
// Every query is checked: a partial store failure must not render
// zeros as real numbers.
func (ac *AnalyticsController) GetSummary(c *fiber.Ctx) error {
	var total int64
	if err := ac.DB.Model(&models.FileOpen{}).Count(&total).Error; err != nil {
		ac.Logger.Printf("analytics query failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	var todayOpens, weeklyOpens int64
	if err := ac.DB.Model(&models.FileOpen{}).
		Where("created_at >= ?", startOfDay).Count(&todayOpens).Error; err != nil {
		ac.Logger.Printf("analytics query failed: %v", err)
		return utils.StoreUnavailable(c)
	}
	if err := ac.DB.Model(&models.FileOpen{}).
		Where("created_at >= ?", weekAgo).Count(&weeklyOpens).Error; err != nil {
		ac.Logger.Printf("analytics query failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	var qerr error
	top := func(column string, limit int) []nameCount {
		rows, err := ac.topCounts(column, limit)
		if err != nil && qerr == nil {
			qerr = err
		}
		return rows
	}

	topSubjects := top("subject_name", 10)
	topTypes := top("material_type", 10)
	branchStats := top("branch", 10)
	deviceStats := top("device_type", 5)
	browserStats := top("browser", 5)
	osStats := top("os", 5)
	if qerr != nil {
		ac.Logger.Printf("analytics query failed: %v", qerr)
		return utils.StoreUnavailable(c)
	}

	var recent []models.FileOpen
	if err := ac.DB.Order("created_at DESC").Limit(20).Find(&recent).Error; err != nil {
		ac.Logger.Printf("analytics query failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"total_opens":     total,
		"today_opens":     todayOpens,
		"weekly_opens":    weeklyOpens,
		"top_subjects":    topSubjects,
		"top_types":       topTypes,
		"branch_stats":    branchStats,
		"device_stats":    deviceStats,
		"browser_stats":   browserStats,
		"os_stats":        osStats,
		"recent_activity": recent,
	})
}

func deviceTypeFromUA(ua string) string {
	lower := strings.ToLower(ua)
	if strings.Contains(lower, "tablet") || strings.Contains(lower, "ipad") {
		return "tablet"
	}
	if strings.Contains(lower, "mobi") || strings.Contains(lower, "android") ||
		strings.Contains(lower, "iphone") {
		return "mobile"
	}
	return "desktop"
}

func browserFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Firefox/"):
		return "Firefox"
	case strings.Contains(ua, "Edg/"):
		return "Edge"
	case strings.Contains(ua, "OPR/") || strings.Contains(ua, "Opera/"):
		return "Opera"
	case strings.Contains(ua, "Chrome/"):
		return "Chrome"
	case strings.Contains(ua, "Safari/"):
		return "Safari"
	default:
		return "Other"
	}
}

func osFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iPhone") || strings.Contains(ua, "iPad"):
		return "iOS"
	case strings.Contains(ua, "Win"):
		return "Windows"
	case strings.Contains(ua, "Mac"):
		return "MacOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return "Other"
	}
}
