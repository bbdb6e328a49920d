package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/period"
)

func (s *Store) TotalExpensesInPeriod(_ context.Context, month, year string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, e := range s.expenses {
		if period.Matches(e.PurchaseDate, month, year) {
			total = total.Add(e.Price)
		}
	}
	return total, nil
}

func (s *Store) TotalMealsInPeriod(_ context.Context, month, year string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, rec := range s.attendance {
		if period.Matches(rec.Date, month, year) {
			n++
		}
	}
	return n, nil
}

func (s *Store) PerUserMealCounts(_ context.Context, month, year string) (map[int64]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int64]int64)
	for _, rec := range s.attendance {
		if period.Matches(rec.Date, month, year) {
			counts[rec.UserID]++
		}
	}
	return counts, nil
}

func (s *Store) PerUserPayments(_ context.Context, month, year string) (map[int64]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sums := make(map[int64]decimal.Decimal)
	for _, p := range s.payments {
		if period.Matches(p.Date, month, year) {
			sums[p.UserID] = sums[p.UserID].Add(p.Amount)
		}
	}
	return sums, nil
}

func (s *Store) PerUserShoppingExpenses(_ context.Context, month, year string) (map[int64]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sums := make(map[int64]decimal.Decimal)
	for _, e := range s.expenses {
		if period.Matches(e.PurchaseDate, month, year) {
			sums[e.PaidByUserID] = sums[e.PaidByUserID].Add(e.Price)
		}
	}
	return sums, nil
}

func (s *Store) AllUsers(_ context.Context) ([]models.UserRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserRef, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, models.UserRef{ID: u.ID, Name: u.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) AllTimeTotals(_ context.Context) (map[int64]decimal.Decimal, map[int64]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make(map[int64]decimal.Decimal)
	for _, p := range s.payments {
		payments[p.UserID] = payments[p.UserID].Add(p.Amount)
	}
	shopping := make(map[int64]decimal.Decimal)
	for _, e := range s.expenses {
		shopping[e.PaidByUserID] = shopping[e.PaidByUserID].Add(e.Price)
	}
	return payments, shopping, nil
}
