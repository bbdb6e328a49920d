package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/settlement"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleResult() *settlement.Result {
	return &settlement.Result{
		Period:   &models.Period{ID: 1, Month: "August", Year: "2025"},
		MealRate: d("33.333333333333333"),
		Reports: []models.SettlementReport{
			{
				UserID: 1, UserName: "Alice", TotalMeals: 2,
				TotalMealCost: d("66.666666666666666"), TotalPayments: d("100"),
				TotalShoppingExpenses: decimal.Zero, TotalContributions: d("100"),
				FinalBalance: d("33.333333333333334"),
			},
			{
				UserID: 2, UserName: "Bob", TotalMeals: 1,
				TotalMealCost: d("33.333333333333333"), TotalPayments: decimal.Zero,
				TotalShoppingExpenses: decimal.Zero, TotalContributions: decimal.Zero,
				FinalBalance: d("-33.333333333333333"),
			},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleResult())
	assert.Equal(t, [][]string{
		{"Alice", "2", "66.67", "100.00", "0.00", "100.00", "33.33"},
		{"Bob", "1", "33.33", "0.00", "0.00", "0.00", "-33.33"},
	}, rows)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), "BDT"))

	out := buf.String()
	assert.Contains(t, out, "Settlement for August 2025")
	assert.Contains(t, out, "Meal rate: 33.33 BDT")
	for _, h := range Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "-33.33")
}

func TestRender_PeriodNotFound(t *testing.T) {
	var buf bytes.Buffer
	res := &settlement.Result{MealRate: decimal.Zero, Reports: []models.SettlementReport{}}
	require.NoError(t, Render(&buf, res, "USD"))
	assert.Contains(t, buf.String(), "Period not found.")
}

func TestRenderOverview(t *testing.T) {
	var buf bytes.Buffer
	reports := []models.FinancialReport{
		{UserID: 1, UserName: "Alice", TotalContributions: d("10"), TotalExpenses: d("2.5"), DebtOrSurplus: d("7.5")},
	}
	require.NoError(t, RenderOverview(&buf, reports, "USD"))

	assert.Equal(t, [][]string{{"Alice", "10.00", "2.50", "7.50"}}, OverviewRows(reports))
	assert.Contains(t, buf.String(), "Financial overview (USD)")
	assert.Contains(t, buf.String(), "7.50")
}
