package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// CreateExpense persists a new expense.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (purchase_date, item_name, price, paid_by_user_id, category)
		 VALUES (?, ?, ?, ?, ?)`,
		formatDate(e.PurchaseDate), e.ItemName, e.Price.String(), e.PaidByUserID, string(e.Category),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("user %d: %w", e.PaidByUserID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	e.ID = id
	return nil
}

// UpdateExpense rewrites the editable fields of an expense: item name,
// price and category.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, e *models.Expense) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expenses SET item_name = ?, price = ?, category = ? WHERE id = ?",
		e.ItemName, e.Price.String(), string(e.Category), e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("expense %d", e.ID))
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("expense %d", id))
}

// ListExpenses returns expenses newest first, optionally filtered by category.
func (s *SQLiteStore) ListExpenses(ctx context.Context, category models.Category) ([]*models.Expense, error) {
	query := `
		SELECT e.id, e.purchase_date, e.item_name, e.price, e.paid_by_user_id, u.name, e.category
		FROM expenses e
		JOIN users u ON e.paid_by_user_id = u.id`
	var args []any
	if category != "" {
		query += " WHERE e.category = ?"
		args = append(args, string(category))
	}
	query += " ORDER BY e.purchase_date DESC, e.id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e := &models.Expense{}
		var date, price, category string
		if err := rows.Scan(&e.ID, &date, &e.ItemName, &price, &e.PaidByUserID, &e.PaidByUserName, &category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.PurchaseDate, err = parseDate(date); err != nil {
			return nil, err
		}
		if e.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse expense price %q: %w", price, err)
		}
		e.Category = models.ParseCategory(category)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}
