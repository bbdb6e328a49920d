package service

import (
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/pkg/api"
)

func toAPIPeriod(p *models.Period) api.Period {
	return api.Period{ID: p.ID, Month: p.Month, Year: p.Year}
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toAPISettlementReport(r models.SettlementReport) api.SettlementReport {
	return api.SettlementReport{
		UserID:                r.UserID,
		UserName:              r.UserName,
		TotalMeals:            r.TotalMeals,
		TotalMealCost:         r.TotalMealCost,
		TotalPayments:         r.TotalPayments,
		TotalShoppingExpenses: r.TotalShoppingExpenses,
		TotalContributions:    r.TotalContributions,
		FinalBalance:          r.FinalBalance,
	}
}

func toAPIFinancialReport(r models.FinancialReport) api.FinancialReport {
	return api.FinancialReport{
		UserID:             r.UserID,
		UserName:           r.UserName,
		TotalContributions: r.TotalContributions,
		TotalExpenses:      r.TotalExpenses,
		DebtOrSurplus:      r.DebtOrSurplus,
	}
}

func toAPIExpense(e *models.Expense) api.Expense {
	return api.Expense{
		ID:             e.ID,
		PurchaseDate:   e.PurchaseDate.Format(models.DateLayout),
		ItemName:       e.ItemName,
		Price:          e.Price,
		PaidByUserID:   e.PaidByUserID,
		PaidByUserName: e.PaidByUserName,
		Category:       string(e.Category),
	}
}

func toAPIPayment(p *models.Payment) api.Payment {
	return api.Payment{
		ID:     p.ID,
		UserID: p.UserID,
		Amount: p.Amount,
		Date:   p.Date.Format(models.DateLayout),
	}
}

func toAPIMenuItems(items []models.MenuItem) []api.MenuItem {
	out := make([]api.MenuItem, len(items))
	for i, it := range items {
		out[i] = api.MenuItem{ID: it.ID, Name: it.Name}
	}
	return out
}

func toAPIDailyMenu(m *models.DailyMenu) api.DailyMenu {
	return api.DailyMenu{
		Date:      m.Date.Format(models.DateLayout),
		Breakfast: toAPIMenuItems(m.Breakfast),
		Lunch:     toAPIMenuItems(m.Lunch),
		Dinner:    toAPIMenuItems(m.Dinner),
	}
}
