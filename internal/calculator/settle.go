package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/models"
)

// PeriodTotals holds the per-user aggregates for one billing period.
// Users missing from a map had no activity of that kind.
type PeriodTotals struct {
	Meals    map[int64]int64
	Payments map[int64]decimal.Decimal
	Shopping map[int64]decimal.Decimal
}

// Settle computes one SettlementReport per user, in the order users are given.
//
// Algorithm, per user:
//   - meal cost = meals × rate
//   - contributions = payments + shopping
//   - final balance = contributions − meal cost
//
// No rounding is applied.
func Settle(rate decimal.Decimal, users []models.UserRef, totals PeriodTotals) []models.SettlementReport {
	reports := make([]models.SettlementReport, 0, len(users))
	for _, u := range users {
		meals := totals.Meals[u.ID]
		payments := amountOrZero(totals.Payments, u.ID)
		shopping := amountOrZero(totals.Shopping, u.ID)

		mealCost := rate.Mul(decimal.NewFromInt(meals))
		contributions := payments.Add(shopping)

		reports = append(reports, models.SettlementReport{
			UserID:                u.ID,
			UserName:              u.Name,
			TotalMeals:            meals,
			TotalMealCost:         mealCost,
			TotalPayments:         payments,
			TotalShoppingExpenses: shopping,
			TotalContributions:    contributions,
			FinalBalance:          contributions.Sub(mealCost),
		})
	}
	return reports
}

// Overview computes the all-time position of every user: payments are
// contributions, expenses they paid for are counted against them.
func Overview(users []models.UserRef, payments, shopping map[int64]decimal.Decimal) []models.FinancialReport {
	reports := make([]models.FinancialReport, 0, len(users))
	for _, u := range users {
		paid := amountOrZero(payments, u.ID)
		spent := amountOrZero(shopping, u.ID)
		reports = append(reports, models.FinancialReport{
			UserID:             u.ID,
			UserName:           u.Name,
			TotalContributions: paid,
			TotalExpenses:      spent,
			DebtOrSurplus:      paid.Sub(spent),
		})
	}
	return reports
}

// amountOrZero returns m[id], or zero if the user has no entry.
func amountOrZero(m map[int64]decimal.Decimal, id int64) decimal.Decimal {
	if v, ok := m[id]; ok {
		return v
	}
	return decimal.Zero
}
