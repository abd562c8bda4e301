package domain

import "regexp"

// Shift policy constants
const (
	// MaxShiftDurationMinutes is the longest shift a driver may reserve (10 hours).
	MaxShiftDurationMinutes = 600
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PlateNumberPattern is the fleet's display format for plate numbers,
// e.g. "HH-QQ 705".
var PlateNumberPattern = regexp.MustCompile(`^[A-Z]{2}-[A-Z]{2} \d{3}$`)

// ValidPlateNumber reports whether s matches the fleet plate format.
func ValidPlateNumber(s string) bool {
	return PlateNumberPattern.MatchString(s)
}
