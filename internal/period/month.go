// Package period owns billing periods: the canonical month-name rule that
// decides whether a date belongs to a period, and the registry that creates
// and lists periods.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/messbook/internal/models"
)

// MonthName returns the canonical month name for t ("January".."December").
// Periods are stored with the same representation, so matching is a plain
// string comparison.
func MonthName(t time.Time) string {
	return t.Month().String()
}

// Year returns the four digit year of t.
func Year(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}

// Matches reports whether t falls in the period named by month and year.
// The comparison is exact: "august" does not match a date in August.
func Matches(t time.Time, month, year string) bool {
	return MonthName(t) == month && Year(t) == year
}

// CanonicalMonth normalises user input to the stored month name.
// Any capitalisation of an English full month name is accepted.
func CanonicalMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(s, m.String()) {
			return m.String(), nil
		}
	}
	return "", fmt.Errorf("%w: unknown month %q", models.ErrInvalidInput, s)
}

// MonthNumber returns 1..12 for a canonical month name and 0 otherwise.
func MonthNumber(name string) int {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m)
		}
	}
	return 0
}

// ValidateYear checks for a four digit year.
func ValidateYear(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return "", fmt.Errorf("%w: year %q must have four digits", models.ErrInvalidInput, s)
	}
	if _, err := strconv.Atoi(s); err != nil {
		return "", fmt.Errorf("%w: year %q must have four digits", models.ErrInvalidInput, s)
	}
	return s, nil
}

// Less orders periods most recent first: year descending, then month
// descending in calendar order.
func Less(a, b *models.Period) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	return MonthNumber(a.Month) > MonthNumber(b.Month)
}
