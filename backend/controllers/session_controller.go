package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/navigation"
	"studyvault/backend/selection"
	"studyvault/backend/utils"
)

// SessionController exposes the persisted wizard state. Each browser
// session identifies itself with an X-Session-Key header; the server
// is the only reader and writer of the stored record.
type SessionController struct {
	Selection *selection.Controller
	Cfg       *config.Config
	Logger    *log.Logger
}

func NewSessionController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *SessionController {
	return &SessionController{Selection: selection.NewController(db), Cfg: cfg, Logger: logger}
}

func sessionKey(c *fiber.Ctx) string {
	return c.Get("X-Session-Key")
}

func (sc *SessionController) respondState(c *fiber.Ctx, key string) error {
	state, err := sc.Selection.Get(key)
	if err != nil {
		sc.Logger.Printf("selection load failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"selection":  state,
		"breadcrumb": selection.Breadcrumb(state),
		"step":       navigation.NextStep(state),
		"path":       navigation.EncodePath(state),
	})
}

// GetSelection returns the current state, the breadcrumb and the step
// the wizard should show next.
func (sc *SessionController) GetSelection(c *fiber.Ctx) error {
	key := sessionKey(c)
	if key == "" {
		return utils.BadRequest(c, "Missing X-Session-Key header")
	}
	return sc.respondState(c, key)
}

// UpdateSelection applies a partial update through the typed setters
// and persists the merged state.
func (sc *SessionController) UpdateSelection(c *fiber.Ctx) error {
	key := sessionKey(c)
	if key == "" {
		return utils.BadRequest(c, "Missing X-Session-Key header")
	}

	var upd selection.Update
	if err := c.BodyParser(&upd); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	state, err := sc.Selection.Apply(key, upd)
	if err != nil {
		sc.Logger.Printf("selection update failed: %v", err)
		return utils.StoreUnavailable(c)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"selection":  state,
		"breadcrumb": selection.Breadcrumb(state),
		"step":       navigation.NextStep(state),
		"path":       navigation.EncodePath(state),
	})
}

// ResetSelection clears the persisted state, returning the wizard to
// the first step.
func (sc *SessionController) ResetSelection(c *fiber.Ctx) error {
	key := sessionKey(c)
	if key == "" {
		return utils.BadRequest(c, "Missing X-Session-Key header")
	}

	if err := sc.Selection.Reset(key); err != nil {
		sc.Logger.Printf("selection reset failed: %v", err)
		return utils.StoreUnavailable(c)
	}
	return utils.NoContent(c)
}
