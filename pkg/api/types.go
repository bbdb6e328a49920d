// Package api defines the request and response messages of the messbook
// RPC services. Messages are plain structs encoded as JSON; dates are
// YYYY-MM-DD strings and amounts are decimal strings.
package api

import "github.com/shopspring/decimal"

type Period struct {
	ID    int64  `json:"id"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

type SettlementReport struct {
	UserID                int64           `json:"user_id"`
	UserName              string          `json:"user_name"`
	TotalMeals            int64           `json:"total_meals"`
	TotalMealCost         decimal.Decimal `json:"total_meal_cost"`
	TotalPayments         decimal.Decimal `json:"total_payments"`
	TotalShoppingExpenses decimal.Decimal `json:"total_shopping_expenses"`
	TotalContributions    decimal.Decimal `json:"total_contributions"`
	FinalBalance          decimal.Decimal `json:"final_balance"`
}

type FinancialReport struct {
	UserID             int64           `json:"user_id"`
	UserName           string          `json:"user_name"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	DebtOrSurplus      decimal.Decimal `json:"debt_or_surplus"`
}

type MealAttendance struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name,omitempty"`
	MealType string `json:"meal_type"`
}

type Expense struct {
	ID             int64           `json:"id"`
	PurchaseDate   string          `json:"purchase_date"`
	ItemName       string          `json:"item_name"`
	Price          decimal.Decimal `json:"price"`
	PaidByUserID   int64           `json:"paid_by_user_id"`
	PaidByUserName string          `json:"paid_by_user_name,omitempty"`
	Category       string          `json:"category"`
}

type Payment struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type MenuItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DailyMenu struct {
	Date      string     `json:"date"`
	Breakfast []MenuItem `json:"breakfast"`
	Lunch     []MenuItem `json:"lunch"`
	Dinner    []MenuItem `json:"dinner"`
}

type Settings struct {
	Currency string `json:"currency"`
}
