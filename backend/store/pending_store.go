package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studyvault/backend/models"
)

// ErrPendingNotFound is returned when a review action targets a record
// that does not exist or is no longer pending.
var ErrPendingNotFound = errors.New("pending material not found")

// PendingStore handles the contribution write path: submissions go
// into pending_materials and a reviewer either publishes or rejects
// them. Pending rows are never deleted.
type PendingStore struct {
	DB *gorm.DB
}

func NewPendingStore(db *gorm.DB) *PendingStore {
	return &PendingStore{DB: db}
}

// Submit inserts a contributor submission with status pending.
func (s *PendingStore) Submit(pending *models.PendingMaterial) error {
	pending.Status = models.StatusPending
	pending.SubmittedAt = time.Now()
	if err := s.DB.Create(pending).Error; err != nil {
		return fmt.Errorf("failed to submit material: %w", err)
	}
	return nil
}

// ListPending returns all pending submissions, newest first.
func (s *PendingStore) ListPending() ([]models.PendingMaterial, error) {
	var pending []models.PendingMaterial
	err := s.DB.Where("status = ?", models.StatusPending).
		Order("submitted_at DESC").
		Find(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending materials: %w", err)
	}
	return pending, nil
}

// Approve publishes a pending record: a Material row is created from
// its fields (with finalURL when the reviewer edited the link) and the
// record is marked approved. Both writes run in one transaction so a
// failure cannot leave a published row with an unreviewed pending
// record.
func (s *PendingStore) Approve(id uint, finalURL string) (*models.Material, error) {
	var material *models.Material

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var pending models.PendingMaterial
		if err := tx.Where("id = ? AND status = ?", id, models.StatusPending).
			First(&pending).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPendingNotFound
			}
			return err
		}

		url := pending.URL
		if finalURL != "" {
			url = finalURL
		}

		material = &models.Material{
			Regulation:   pending.Regulation,
			Branch:       pending.Branch,
			Year:         pending.Year,
			Sem:          pending.Sem,
			SubjectName:  pending.SubjectName,
			Credits:      pending.Credits,
			MaterialType: pending.MaterialType,
			MaterialName: pending.MaterialName,
			URL:          url,
			Unit:         pending.Unit,
			YearOptional: pending.YearOptional,
		}
		if err := tx.Create(material).Error; err != nil {
			return err
		}

		now := time.Now()
		pending.Status = models.StatusApproved
		pending.ReviewedAt = &now
		return tx.Save(&pending).Error
	})
	if err != nil {
		if errors.Is(err, ErrPendingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to approve pending material %d: %w", id, err)
	}

	return material, nil
}

// Reject marks a pending record rejected with optional reviewer notes.
// No Material row is created.
func (s *PendingStore) Reject(id uint, notes string) error {
	var pending models.PendingMaterial
	if err := s.DB.Where("id = ? AND status = ?", id, models.StatusPending).
		First(&pending).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPendingNotFound
		}
		return fmt.Errorf("failed to load pending material %d: %w", id, err)
	}

	now := time.Now()
	pending.Status = models.StatusRejected
	pending.ReviewedAt = &now
	if notes != "" {
		pending.AdminNotes = &notes
	}

	if err := s.DB.Save(&pending).Error; err != nil {
		return fmt.Errorf("failed to reject pending material %d: %w", id, err)
	}
	return nil
}
