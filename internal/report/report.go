// Package report renders settlement results as terminal tables.
// Amounts are rounded to two decimal places here and nowhere else.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/settlement"
)

// Headers are the settlement table columns.
var Headers = []string{"User", "Meals", "Meal cost", "Payments", "Shopping", "Contributions", "Balance"}

// OverviewHeaders are the all-time overview columns.
var OverviewHeaders = []string{"User", "Contributions", "Expenses", "Debt/Surplus"}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	debtStyle   = numberStyle.Foreground(lipgloss.Color("#f38ba8"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// Money formats an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Rows returns the settlement table body, one row per report.
func Rows(res *settlement.Result) [][]string {
	rows := make([][]string, 0, len(res.Reports))
	for _, r := range res.Reports {
		rows = append(rows, []string{
			r.UserName,
			strconv.FormatInt(r.TotalMeals, 10),
			Money(r.TotalMealCost),
			Money(r.TotalPayments),
			Money(r.TotalShoppingExpenses),
			Money(r.TotalContributions),
			Money(r.FinalBalance),
		})
	}
	return rows
}

// Render writes a titled settlement table to w.
func Render(w io.Writer, res *settlement.Result, currency string) error {
	if !res.Found() {
		_, err := fmt.Fprintln(w, mutedStyle.Render("Period not found."))
		return err
	}

	title := titleStyle.Render(fmt.Sprintf("Settlement for %s %s", res.Period.Month, res.Period.Year))
	rate := fmt.Sprintf("Meal rate: %s %s", Money(res.MealRate), currency)

	balanceCol := len(Headers) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		Rows(Rows(res)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			case col == balanceCol && row < len(res.Reports) && res.Reports[row].FinalBalance.IsNegative():
				return debtStyle
			default:
				return numberStyle
			}
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", title, rate, t.Render())
	return err
}

// OverviewRows returns the all-time overview body.
func OverviewRows(reports []models.FinancialReport) [][]string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.UserName,
			Money(r.TotalContributions),
			Money(r.TotalExpenses),
			Money(r.DebtOrSurplus),
		})
	}
	return rows
}

// RenderOverview writes the all-time overview table to w.
func RenderOverview(w io.Writer, reports []models.FinancialReport, currency string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(OverviewHeaders...).
		Rows(OverviewRows(reports)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render("Financial overview ("+currency+")"), t.Render())
	return err
}
