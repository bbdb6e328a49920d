package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/messbook/internal/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSettle(t *testing.T) {
	users := []models.UserRef{{ID: 1, Name: "U1"}, {ID: 2, Name: "U2"}, {ID: 3, Name: "Idle"}}
	totals := PeriodTotals{
		Meals:    map[int64]int64{1: 20},
		Payments: map[int64]decimal.Decimal{2: d("100")},
		Shopping: map[int64]decimal.Decimal{2: d("50")},
	}

	reports := Settle(d("3"), users, totals)
	require.Len(t, reports, 3)

	t.Run("eater with no contributions owes meal cost", func(t *testing.T) {
		u1 := reports[0]
		assert.Equal(t, int64(1), u1.UserID)
		assert.Equal(t, int64(20), u1.TotalMeals)
		assert.Equal(t, "60.00", u1.TotalMealCost.StringFixed(2))
		assert.True(t, u1.TotalContributions.IsZero())
		assert.Equal(t, "-60.00", u1.FinalBalance.StringFixed(2))
	})

	t.Run("contributor who never ate has pure surplus", func(t *testing.T) {
		u2 := reports[1]
		assert.Equal(t, int64(0), u2.TotalMeals)
		assert.Equal(t, "150.00", u2.TotalContributions.StringFixed(2))
		assert.Equal(t, "150.00", u2.FinalBalance.StringFixed(2))
	})

	t.Run("idle user appears with zero fields", func(t *testing.T) {
		idle := reports[2]
		assert.Equal(t, "Idle", idle.UserName)
		assert.Equal(t, int64(0), idle.TotalMeals)
		assert.True(t, idle.TotalMealCost.IsZero())
		assert.True(t, idle.TotalPayments.IsZero())
		assert.True(t, idle.TotalShoppingExpenses.IsZero())
		assert.True(t, idle.FinalBalance.IsZero())
	})
}

func TestSettle_PreservesUserOrder(t *testing.T) {
	users := []models.UserRef{{ID: 2}, {ID: 5}, {ID: 9}}
	reports := Settle(decimal.Zero, users, PeriodTotals{})

	require.Len(t, reports, 3)
	for i, u := range users {
		assert.Equal(t, u.ID, reports[i].UserID)
	}
}

func TestSettle_Reconciles(t *testing.T) {
	// Shopping 70 + 30 = 100 total expenses, 7 meals.
	users := []models.UserRef{{ID: 1}, {ID: 2}, {ID: 3}}
	totals := PeriodTotals{
		Meals:    map[int64]int64{1: 3, 2: 2, 3: 2},
		Payments: map[int64]decimal.Decimal{3: d("12.5")},
		Shopping: map[int64]decimal.Decimal{1: d("70"), 2: d("30")},
	}
	totalExpenses := d("100")
	rate := MealRate(totalExpenses, 7)

	sum := decimal.Zero
	for _, r := range Settle(rate, users, totals) {
		sum = sum.Add(r.FinalBalance)
	}

	want := d("12.5").Add(d("100")).Sub(totalExpenses)
	assert.True(t, sum.Sub(want).Abs().LessThanOrEqual(d("0.01")), "sum of balances = %s, want %s", sum, want)
}

func TestOverview(t *testing.T) {
	users := []models.UserRef{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}
	reports := Overview(users,
		map[int64]decimal.Decimal{1: d("200")},
		map[int64]decimal.Decimal{1: d("50"), 2: d("80")},
	)

	require.Len(t, reports, 2)
	assert.Equal(t, "150", reports[0].DebtOrSurplus.String())
	assert.Equal(t, "-80", reports[1].DebtOrSurplus.String())
}
