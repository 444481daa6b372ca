package store

import (
	"fmt"

	"gorm.io/gorm"

	"studyvault/backend/models"
)

// MaterialStore handles read queries against the live materials table.
// Every wizard step past the semester resolves its options here.
type MaterialStore struct {
	DB *gorm.DB
}

func NewMaterialStore(db *gorm.DB) *MaterialStore {
	return &MaterialStore{DB: db}
}

// Scope is the fully coerced (regulation, branch, year, sem) filter
// shared by every query.
type Scope struct {
	Regulation int
	Branch     string
	Year       int
	Sem        int
}

// Subject is a derived entity: materials grouped by subject name.
type Subject struct {
	Name    string `json:"name" gorm:"column:subject_name"`
	Credits int    `json:"credits" gorm:"column:credits"`
}

func (s *MaterialStore) scoped(scope Scope) *gorm.DB {
	return s.DB.Model(&models.Material{}).
		Where("regulation = ? AND branch = ? AND year = ? AND sem = ?",
			scope.Regulation, scope.Branch, scope.Year, scope.Sem)
}

// ListSubjects returns the distinct (name, credits) pairs under a
// scope, sorted by name. Subject identity is exact name equality, so a
// name appearing with two credit values keeps only its first row.
func (s *MaterialStore) ListSubjects(scope Scope) ([]Subject, error) {
	var rows []Subject
	err := s.scoped(scope).
		Distinct("subject_name", "credits").
		Order("subject_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	subjects := make([]Subject, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.Name] {
			continue
		}
		seen[row.Name] = true
		subjects = append(subjects, row)
	}
	return subjects, nil
}

// ListAvailableMaterialTypes returns the distinct material types
// present for a subject, sorted by name and annotated from the static
// catalog.
func (s *MaterialStore) ListAvailableMaterialTypes(scope Scope, subjectName string) ([]models.MaterialTypeInfo, error) {
	var names []string
	err := s.scoped(scope).
		Where("subject_name = ?", subjectName).
		Distinct().
		Order("material_type ASC").
		Pluck("material_type", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list material types: %w", err)
	}

	types := make([]models.MaterialTypeInfo, 0, len(names))
	for _, name := range names {
		info, ok := models.TypeInfo(name)
		if !ok {
			// Uncatalogued type from an older import; no icon, no units.
			info = models.MaterialTypeInfo{Name: name, Icon: "FileText"}
		}
		types = append(types, info)
	}
	return types, nil
}

// ListAvailableUnits returns the distinct non-null units for a subject
// and material type, in ascending numeric order.
func (s *MaterialStore) ListAvailableUnits(scope Scope, subjectName, materialType string) ([]int, error) {
	var units []int
	err := s.scoped(scope).
		Where("subject_name = ? AND material_type = ? AND unit IS NOT NULL",
			subjectName, materialType).
		Distinct().
		Order("unit ASC").
		Pluck("unit", &units).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

// ListAvailableYears returns the distinct PYQ exam years for a subject,
// most recent first.
func (s *MaterialStore) ListAvailableYears(scope Scope, subjectName, materialType string) ([]string, error) {
	var years []string
	err := s.scoped(scope).
		Where("subject_name = ? AND material_type = ? AND year_optional IS NOT NULL AND year_optional <> ''",
			subjectName, materialType).
		Distinct().
		Order("year_optional DESC").
		Pluck("year_optional", &years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	return years, nil
}

// ListMaterials returns the full rows for a subject and material type,
// sorted by material name. The unit and exam-year filters apply only
// when supplied.
func (s *MaterialStore) ListMaterials(scope Scope, subjectName, materialType string, unit *int, yearOptional *string) ([]models.Material, error) {
	query := s.scoped(scope).
		Where("subject_name = ? AND material_type = ?", subjectName, materialType)

	if unit != nil {
		query = query.Where("unit = ?", *unit)
	}
	if yearOptional != nil && *yearOptional != "" {
		query = query.Where("year_optional = ?", *yearOptional)
	}

	var materials []models.Material
	if err := query.Order("material_name ASC").Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, nil
}

// Insert adds a material row directly (admin upload and seed import).
func (s *MaterialStore) Insert(material *models.Material) error {
	if err := s.DB.Create(material).Error; err != nil {
		return fmt.Errorf("failed to insert material: %w", err)
	}
	return nil
}
