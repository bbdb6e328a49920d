package models

// DefaultCurrency is used until an admin picks another currency.
const DefaultCurrency = "USD"

// Settings holds household-wide preferences.
type Settings struct {
	// Currency is the ISO code printed next to amounts in reports.
	Currency string
}
