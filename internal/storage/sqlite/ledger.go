package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/dbx"
	"github.com/mmynk/messbook/internal/models"
)

// Period filters. Amounts are stored as decimal text and summed in Go, so
// the SQL only selects rows; counting is left to SQLite.
const (
	expenseInPeriod    = "monthname(purchase_date) = ? AND strftime('%Y', purchase_date) = ?"
	attendanceInPeriod = "monthname(attendance_date) = ? AND strftime('%Y', attendance_date) = ?"
	paymentInPeriod    = "monthname(date) = ? AND strftime('%Y', date) = ?"
)

// TotalExpensesInPeriod sums every expense price in the period.
func (s *SQLiteStore) TotalExpensesInPeriod(ctx context.Context, month, year string) (decimal.Decimal, error) {
	byUser, err := sumByUser(ctx, s.db,
		"SELECT paid_by_user_id, price FROM expenses WHERE "+expenseInPeriod, month, year)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total expenses: %w", err)
	}
	total := decimal.Zero
	for _, v := range byUser {
		total = total.Add(v)
	}
	return total, nil
}

// TotalMealsInPeriod counts attendance rows in the period.
func (s *SQLiteStore) TotalMealsInPeriod(ctx context.Context, month, year string) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM meal_attendance WHERE "+attendanceInPeriod, month, year,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}
	return total, nil
}

// PerUserMealCounts counts attendance rows per user in the period.
func (s *SQLiteStore) PerUserMealCounts(ctx context.Context, month, year string) (map[int64]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, COUNT(*) FROM meal_attendance WHERE "+attendanceInPeriod+" GROUP BY user_id",
		month, year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count meals per user: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var userID, n int64
		if err := rows.Scan(&userID, &n); err != nil {
			return nil, fmt.Errorf("failed to scan meal count: %w", err)
		}
		counts[userID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal counts: %w", err)
	}
	return counts, nil
}

// PerUserPayments sums payment amounts per user in the period.
func (s *SQLiteStore) PerUserPayments(ctx context.Context, month, year string) (map[int64]decimal.Decimal, error) {
	m, err := sumByUser(ctx, s.db,
		"SELECT user_id, amount FROM payments WHERE "+paymentInPeriod, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments per user: %w", err)
	}
	return m, nil
}

// PerUserShoppingExpenses sums expense prices per payer in the period.
func (s *SQLiteStore) PerUserShoppingExpenses(ctx context.Context, month, year string) (map[int64]decimal.Decimal, error) {
	m, err := sumByUser(ctx, s.db,
		"SELECT paid_by_user_id, price FROM expenses WHERE "+expenseInPeriod, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum shopping per user: %w", err)
	}
	return m, nil
}

// AllUsers returns id and name of every user, ordered by id.
func (s *SQLiteStore) AllUsers(ctx context.Context) ([]models.UserRef, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.UserRef
	for rows.Next() {
		var u models.UserRef
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// AllTimeTotals sums every payment and every expense per user.
func (s *SQLiteStore) AllTimeTotals(ctx context.Context) (map[int64]decimal.Decimal, map[int64]decimal.Decimal, error) {
	payments, err := sumByUser(ctx, s.db, "SELECT user_id, amount FROM payments")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sum payments: %w", err)
	}
	shopping, err := sumByUser(ctx, s.db, "SELECT paid_by_user_id, price FROM expenses")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return payments, shopping, nil
}

// sumByUser runs a query yielding (user_id, decimal text) rows and sums the
// amounts per user.
func sumByUser(ctx context.Context, db dbx.DBTX, query string, args ...any) (map[int64]decimal.Decimal, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var userID int64
		var raw string
		if err := rows.Scan(&userID, &raw); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", raw, err)
		}
		sums[userID] = sums[userID].Add(amount)
	}
	return sums, rows.Err()
}
