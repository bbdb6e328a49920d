package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"Admin", RoleAdmin},
		{"Staff", RoleStaff},
		{" Staff ", RoleStaff},
		{"Student", RoleStudent},
		{"", RoleStudent},
		{"admin", RoleStudent},
		{"Janitor", RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestRole_CanManageLedger(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageLedger())
	assert.True(t, RoleStaff.CanManageLedger())
	assert.False(t, RoleStudent.CanManageLedger())
}

func TestParseMealType(t *testing.T) {
	for _, in := range []string{"breakfast", "LUNCH", " Dinner"} {
		_, err := ParseMealType(in)
		assert.NoError(t, err, in)
	}

	mt, err := ParseMealType("lunch")
	require.NoError(t, err)
	assert.Equal(t, MealLunch, mt)

	for _, in := range []string{"", "brunch", "Supper"} {
		_, err := ParseMealType(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryFood, ParseCategory("food"))
	assert.Equal(t, CategoryUtilities, ParseCategory("Utilities"))
	assert.Equal(t, CategoryRent, ParseCategory("RENT"))
	assert.Equal(t, CategoryOther, ParseCategory("Other"))
	assert.Equal(t, CategoryOther, ParseCategory("Snacks"))
	assert.Equal(t, CategoryOther, ParseCategory(""))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-08-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC), d)

	for _, in := range []string{"", "31/08/2025", "2025-02-30", "2025-8-1"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestDailyMenu_AddAndItems(t *testing.T) {
	m := &DailyMenu{}
	m.Add(MealBreakfast, MenuItem{ID: 1, Name: "Paratha"})
	m.Add(MealDinner, MenuItem{ID: 2, Name: "Rice"})
	m.Add(MealDinner, MenuItem{ID: 3, Name: "Dal"})

	assert.Len(t, m.Items(MealBreakfast), 1)
	assert.Empty(t, m.Items(MealLunch))
	assert.Equal(t, []MenuItem{{ID: 2, Name: "Rice"}, {ID: 3, Name: "Dal"}}, m.Items(MealDinner))
	assert.Nil(t, m.Items("Brunch"))
}
