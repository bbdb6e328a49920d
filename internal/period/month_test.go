package period

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/messbook/internal/models"
)

func TestCanonicalMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"August", "August", false},
		{"august", "August", false},
		{"  DECEMBER ", "December", false},
		{"Aug", "", true},
		{"Augustus", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalMonth(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateYear(t *testing.T) {
	y, err := ValidateYear(" 2025 ")
	require.NoError(t, err)
	assert.Equal(t, "2025", y)

	for _, in := range []string{"25", "20255", "20x5", ""} {
		_, err := ValidateYear(in)
		assert.ErrorIs(t, err, models.ErrInvalidInput, in)
	}
}

func TestMatches(t *testing.T) {
	d := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, Matches(d, "August", "2025"))
	assert.False(t, Matches(d, "august", "2025"))
	assert.False(t, Matches(d, "August", "2024"))
	assert.False(t, Matches(d, "September", "2025"))
	assert.True(t, Matches(time.Date(2025, time.August, 31, 23, 59, 0, 0, time.UTC), "August", "2025"))
}

func TestLess(t *testing.T) {
	periods := []*models.Period{
		{Month: "February", Year: "2025"},
		{Month: "December", Year: "2024"},
		{Month: "January", Year: "2026"},
		{Month: "August", Year: "2025"},
	}
	sort.Slice(periods, func(i, j int) bool { return Less(periods[i], periods[j]) })

	var got []string
	for _, p := range periods {
		got = append(got, p.Month+" "+p.Year)
	}
	assert.Equal(t, []string{"January 2026", "August 2025", "February 2025", "December 2024"}, got)
}
