package models

import "gorm.io/gorm"

// SelectionState is one browser session's wizard progress, keyed by the
// session key the client sends. It replaces the old localStorage record
// and keeps its field names.
type SelectionState struct {
	gorm.Model
	SessionKey   string  `json:"-" gorm:"uniqueIndex"`
	Regulation   *string `json:"regulation"`   // "R22", "R25"
	Branch       *string `json:"branch"`       // "CSE", ...
	Year         *string `json:"year"`         // "2nd Year", ...
	Semester     *string `json:"semester"`     // "Sem 1", "Sem 2"
	Subject      *string `json:"subject"`      // short subject code
	MaterialType *string `json:"materialType"`
	SelectedUnit *int    `json:"selectedUnit"`
	YearOptional *string `json:"yearOptional"` // PYQ year filter
}
