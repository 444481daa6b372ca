package models

// The material-type catalog is configuration, not queried data. Icons
// are the UI icon names, HasUnits drives the unit-selection step.
// Only Notes carries units; YouTube Videos used to but no longer does.

const (
	TypeNotes              = "Notes"
	TypeYouTubeVideos      = "YouTube Videos"
	TypePYQs               = "PYQs"
	TypeQuestionBank       = "Question Bank"
	TypeImportantQuestions = "Important Questions"
	TypeSyllabus           = "Syllabus"
	TypeLabManual          = "Lab Manual"
	TypeReferenceBooks     = "Reference Books"
	TypePPTs               = "PPTs"
)

type MaterialTypeInfo struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	HasUnits bool   `json:"has_units"`
}

var MaterialTypeCatalog = []MaterialTypeInfo{
	{Name: TypeNotes, Icon: "FileText", HasUnits: true},
	{Name: TypeYouTubeVideos, Icon: "Youtube", HasUnits: false},
	{Name: TypePYQs, Icon: "Clock", HasUnits: false},
	{Name: TypeQuestionBank, Icon: "HelpCircle", HasUnits: false},
	{Name: TypeImportantQuestions, Icon: "Star", HasUnits: false},
	{Name: TypeSyllabus, Icon: "List", HasUnits: false},
	{Name: TypeLabManual, Icon: "FlaskConical", HasUnits: false},
	{Name: TypeReferenceBooks, Icon: "BookOpen", HasUnits: false},
	{Name: TypePPTs, Icon: "Presentation", HasUnits: false},
}

// TypeInfo looks a material type up in the static catalog.
func TypeInfo(name string) (MaterialTypeInfo, bool) {
	for _, t := range MaterialTypeCatalog {
		if t.Name == name {
			return t, true
		}
	}
	return MaterialTypeInfo{}, false
}

var Regulations = []int{22, 25}

var Branches = []string{"IT", "CSE", "AIML", "DS", "ECE", "EEE", "MECH", "CIVIL"}

const (
	MinYear = 1
	MaxYear = 4
	MinSem  = 1
	MaxSem  = 2
	MinUnit = 1
	MaxUnit = 5
)
