package api

import "github.com/shopspring/decimal"

type GenerateSettlementRequest struct {
	PeriodID int64 `json:"period_id"`
}

// GenerateSettlementResponse carries the settlement for one period.
// PeriodFound is false when the period does not exist; Period is then nil,
// MealRate is zero and Reports is empty.
type GenerateSettlementResponse struct {
	PeriodFound bool               `json:"period_found"`
	Period      *Period            `json:"period,omitempty"`
	MealRate    decimal.Decimal    `json:"meal_rate"`
	Currency    string             `json:"currency"`
	Reports     []SettlementReport `json:"reports"`
}

type GetFinancialOverviewRequest struct{}

type GetFinancialOverviewResponse struct {
	Currency string            `json:"currency"`
	Reports  []FinancialReport `json:"reports"`
}
