package models

import "github.com/shopspring/decimal"

// SettlementReport is one user's reconciliation for a billing period.
// It is computed on every request and never stored.
type SettlementReport struct {
	UserID   int64
	UserName string

	// TotalMeals is the number of meal slots the user attended in the period.
	TotalMeals int64

	// TotalMealCost is TotalMeals multiplied by the period meal rate.
	TotalMealCost decimal.Decimal

	// TotalPayments is the sum of the user's cash payments in the period.
	TotalPayments decimal.Decimal

	// TotalShoppingExpenses is the sum of expenses the user paid for in the period.
	TotalShoppingExpenses decimal.Decimal

	// TotalContributions is TotalPayments + TotalShoppingExpenses.
	TotalContributions decimal.Decimal

	// FinalBalance is TotalContributions - TotalMealCost.
	// Positive = surplus (user is owed money), negative = debt.
	FinalBalance decimal.Decimal
}

// FinancialReport is the all-time position of a user: every payment and
// every expense they paid for, regardless of period.
type FinancialReport struct {
	UserID             int64
	UserName           string
	TotalContributions decimal.Decimal
	TotalExpenses      decimal.Decimal
	DebtOrSurplus      decimal.Decimal
}
