package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return t, nil
}

// MealType is one of the three daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// MealTypes lists the slots in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

// ParseMealType decodes a meal slot. Matching ignores case; anything other
// than breakfast, lunch or dinner is rejected.
func ParseMealType(s string) (MealType, error) {
	for _, mt := range MealTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(mt)) {
			return mt, nil
		}
	}
	return "", fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, s)
}

// AttendanceRecord is one user consuming one meal slot on one date.
// Unique on (UserID, Date, MealType); corrected by delete and re-create.
type AttendanceRecord struct {
	UserID   int64
	Date     time.Time
	MealType MealType
}

// MealAttendance is an attendance row joined with the user's name,
// as listed for a single day.
type MealAttendance struct {
	UserID   int64
	UserName string
	MealType MealType
}
