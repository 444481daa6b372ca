package navigation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"studyvault/backend/models"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Slugify turns a stored name into its URL form: lowercase with spaces
// collapsed to hyphens. Stored names keep their original casing, so
// deep links have to be resolved back through ResolveSlug.
func Slugify(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "-")
}

// ResolveSlug finds the candidate whose slug matches. Subject names are
// unique within a scope, so at most one candidate resolves; if two
// names normalize to the same slug the first match wins (known
// limitation).
func ResolveSlug(slug string, candidates []string) (string, bool) {
	for _, name := range candidates {
		if Slugify(name) == slug {
			return name, true
		}
	}
	return "", false
}

// EncodePath encodes the accumulated selection into a bookmarkable URL
// path, segment by segment, stopping at the first missing choice.
func EncodePath(state models.SelectionState) string {
	var segments []string

	scalars := []*string{state.Regulation, state.Branch, state.Year, state.Semester, state.Subject, state.MaterialType}
	for _, v := range scalars {
		if v == nil {
			return "/" + strings.Join(segments, "/")
		}
		segments = append(segments, Slugify(*v))
	}

	if *state.MaterialType == models.TypePYQs {
		segments = append(segments, "years")
		if state.YearOptional != nil {
			segments = append(segments, Slugify(*state.YearOptional))
		}
	} else if info, ok := models.TypeInfo(*state.MaterialType); ok && info.HasUnits {
		segments = append(segments, "units")
		if state.SelectedUnit != nil {
			segments = append(segments, strconv.Itoa(*state.SelectedUnit))
		}
	}

	return "/" + strings.Join(segments, "/")
}

// PathScope is the scalar prefix of a deep link, decoded back to the
// database representation.
type PathScope struct {
	Regulation int
	Branch     string
	Year       int
	Sem        int
}

// DecodeScope decodes the first four path segments. Branch slugs match
// the closed branch set; regulation, year and semester are numeric
// after coercion.
func DecodeScope(regulation, branch, year, semester string) (PathScope, error) {
	var scope PathScope

	reg, err := parseNumericSegment(regulation)
	if err != nil {
		return scope, fmt.Errorf("invalid regulation %q", regulation)
	}
	validReg := false
	for _, r := range models.Regulations {
		if reg == r {
			validReg = true
		}
	}
	if !validReg {
		return scope, fmt.Errorf("unknown regulation %q", regulation)
	}

	branchName, ok := ResolveSlug(branch, models.Branches)
	if !ok {
		return scope, fmt.Errorf("unknown branch %q", branch)
	}

	yr, err := parseNumericSegment(year)
	if err != nil || yr < models.MinYear || yr > models.MaxYear {
		return scope, fmt.Errorf("invalid year %q", year)
	}

	sem, err := parseNumericSegment(semester)
	if err != nil || sem < models.MinSem || sem > models.MaxSem {
		return scope, fmt.Errorf("invalid semester %q", semester)
	}

	scope.Regulation = reg
	scope.Branch = branchName
	scope.Year = yr
	scope.Sem = sem
	return scope, nil
}

func parseNumericSegment(s string) (int, error) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("no numeric value in %q", s)
	}
	return strconv.Atoi(digits.String())
}
