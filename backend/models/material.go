package models

import (
	"time"

	"gorm.io/gorm"
)

// Material is one linked study resource in the live table.
// Unit is set only for types that have units, YearOptional only for PYQs.
type Material struct {
	gorm.Model
	Regulation   int    `json:"regulation"` // 22, 25
	Branch       string `json:"branch"`     // IT, CSE, AIML, ...
	Year         int    `json:"year"`       // 1-4
	Sem          int    `json:"sem"`        // 1-2
	SubjectName  string `json:"subject_name"`
	Credits      int    `json:"credits"`
	MaterialType string `json:"material_type"`
	MaterialName string `json:"material_name"`
	URL          string `json:"url"` // Drive or YouTube link
	Unit         *int   `json:"unit,omitempty"`
	YearOptional *string `json:"year_optional,omitempty"` // '2024', '2023', ...
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PendingMaterial is a contributor submission awaiting review.
// Approve copies it into materials; reject only flips the status.
// Rows are never deleted.
type PendingMaterial struct {
	gorm.Model
	Regulation       int     `json:"regulation"`
	Branch           string  `json:"branch"`
	Year             int     `json:"year"`
	Sem              int     `json:"sem"`
	SubjectName      string  `json:"subject_name"`
	Credits          int     `json:"credits"`
	MaterialType     string  `json:"material_type"`
	MaterialName     string  `json:"material_name"`
	URL              string  `json:"url"`
	Unit             *int    `json:"unit,omitempty"`
	YearOptional     *string `json:"year_optional,omitempty"`
	ContributorName  *string `json:"contributor_name,omitempty"`
	ContributorEmail *string `json:"contributor_email,omitempty"`
	Status           string  `json:"status"` // pending, approved, rejected
	SubmittedAt      time.Time  `json:"submitted_at"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	AdminNotes       *string    `json:"admin_notes,omitempty"`
}

// FileOpen records a material being opened, for the analytics dashboard.
type FileOpen struct {
	gorm.Model
	Regulation   int    `json:"regulation"`
	Branch       string `json:"branch"`
	Year         int    `json:"year"`
	Sem          int    `json:"sem"`
	SubjectName  string `json:"subject_name"`
	MaterialType string `json:"material_type"`
	MaterialName string `json:"material_name"`
	URL          string `json:"url"`
	Unit         *int   `json:"unit,omitempty"`
	DeviceType   string `json:"device_type"` // mobile, tablet, desktop
	Browser      string `json:"browser"`
	OS           string `json:"os"`
	UserAgent    string `json:"user_agent"`
}
