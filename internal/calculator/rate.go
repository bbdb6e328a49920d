package calculator

import "github.com/shopspring/decimal"

// MealRate computes the shared cost per meal slot consumed.
// A period with no recorded meals has a rate of zero rather than an error,
// so an expense-only month still produces a report.
//
// The division keeps decimal.DivisionPrecision digits; callers round only
// for display.
func MealRate(totalExpenses decimal.Decimal, totalMeals int64) decimal.Decimal {
	if totalMeals <= 0 {
		return decimal.Zero
	}
	return totalExpenses.Div(decimal.NewFromInt(totalMeals))
}
