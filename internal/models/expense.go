package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a shared purchase.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryUtilities Category = "Utilities"
	CategoryRent      Category = "Rent"
	CategoryOther     Category = "Other"
)

// ParseCategory decodes a persisted category. Unknown values decode to
// CategoryOther.
func ParseCategory(s string) Category {
	for _, c := range []Category{CategoryFood, CategoryUtilities, CategoryRent} {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c
		}
	}
	return CategoryOther
}

// Expense is one shared purchase attributed to the payer.
type Expense struct {
	// ID is the database identity of the expense.
	ID int64

	// PurchaseDate decides which period the expense falls in.
	PurchaseDate time.Time

	// ItemName describes what was bought.
	ItemName string

	// Price is the positive amount paid.
	Price decimal.Decimal

	// PaidByUserID is the member who paid and is credited with the
	// expense as a shopping contribution.
	PaidByUserID int64

	// PaidByUserName is filled in on reads for display.
	PaidByUserName string

	// Category is used for filtering only.
	Category Category
}
