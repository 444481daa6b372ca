package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumeric normalizes wizard values like "R22", "2nd Year" or
// "Sem 1" to their integer form by stripping everything but digits.
func ParseNumeric(s string) (int, error) {
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

// FormatYear renders an academic year the way the display and the old
// schema expect it ("1st Year" ... "4th Year").
func FormatYear(year int) string {
	suffix := "th"
	switch year {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s Year", year, suffix)
}

// FormatSemester renders a semester as "Sem N".
func FormatSemester(sem int) string {
	return fmt.Sprintf("Sem %d", sem)
}

// FormatRegulation renders a regulation code as "R22" / "R25".
func FormatRegulation(regulation int) string {
	return fmt.Sprintf("R%d", regulation)
}
