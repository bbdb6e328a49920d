package api

import "github.com/shopspring/decimal"

type RecordAttendanceRequest struct {
	UserID   int64  `json:"user_id"`
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
}

type RecordAttendanceResponse struct{}

// AttendanceBatchRequest adds or removes several slots on one date.
type AttendanceBatchRequest struct {
	Date    string           `json:"date"`
	Entries []MealAttendance `json:"entries"`
}

type AttendanceBatchResponse struct {
	Count int `json:"count"`
}

type ListAttendanceRequest struct {
	Date string `json:"date"`
}

type ListAttendanceResponse struct {
	Entries []MealAttendance `json:"entries"`
}

type AddExpenseRequest struct {
	PurchaseDate string          `json:"purchase_date"`
	ItemName     string          `json:"item_name"`
	Price        decimal.Decimal `json:"price"`
	PaidByUserID int64           `json:"paid_by_user_id"`
	Category     string          `json:"category"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	ExpenseID int64           `json:"expense_id"`
	ItemName  string          `json:"item_name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
}

type UpdateExpenseResponse struct{}

type DeleteExpenseRequest struct {
	ExpenseID int64 `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

// ListExpensesRequest lists every expense, or one category when set.
type ListExpensesRequest struct {
	Category string `json:"category,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type RecordPaymentRequest struct {
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type RecordPaymentResponse struct {
	Payment Payment `json:"payment"`
}

type ListPaymentsRequest struct {
	UserID int64 `json:"user_id"`
}

type ListPaymentsResponse struct {
	Payments []Payment `json:"payments"`
}
