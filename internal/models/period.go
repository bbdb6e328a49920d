package models

// Period is a billing month that a settlement is computed over.
// Periods are immutable once created and unique on (Month, Year).
type Period struct {
	// ID is the database identity of the period.
	ID int64

	// Month is the canonical English month name, e.g. "August".
	Month string

	// Year is the four digit year, e.g. "2025".
	Year string
}
