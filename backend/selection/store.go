package selection

import (
	"errors"

	"gorm.io/gorm"

	"studyvault/backend/models"
)

// Store persists one SelectionState row per session key. Reads are
// fail-soft: a missing row comes back as the all-null default state.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Get returns the stored state for a session, or defaults when none
// has been saved yet. Legacy rows that used empty strings for unset
// optional fields are normalized to explicit absence.
func (s *Store) Get(sessionKey string) (models.SelectionState, error) {
	var state models.SelectionState
	err := s.DB.Where("session_key = ?", sessionKey).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SelectionState{SessionKey: sessionKey}, nil
	}
	if err != nil {
		return models.SelectionState{SessionKey: sessionKey}, err
	}

	normalize(&state)
	return state, nil
}

// Save upserts the state row for its session key.
func (s *Store) Save(state *models.SelectionState) error {
	if state.ID == 0 {
		return s.DB.Create(state).Error
	}
	return s.DB.Save(state).Error
}

// Clear removes all persisted state for a session.
func (s *Store) Clear(sessionKey string) error {
	return s.DB.Unscoped().
		Where("session_key = ?", sessionKey).
		Delete(&models.SelectionState{}).Error
}

// normalize fixes field shapes left behind by earlier versions, where
// an unset optional value was stored as "".
func normalize(state *models.SelectionState) {
	state.Regulation = dropEmpty(state.Regulation)
	state.Branch = dropEmpty(state.Branch)
	state.Year = dropEmpty(state.Year)
	state.Semester = dropEmpty(state.Semester)
	state.Subject = dropEmpty(state.Subject)
	state.MaterialType = dropEmpty(state.MaterialType)
	state.YearOptional = dropEmpty(state.YearOptional)
}

func dropEmpty(v *string) *string {
	if v != nil && *v == "" {
		return nil
	}
	return v
}
