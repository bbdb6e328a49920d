package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// CreatePayment records a cash contribution.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO payments (user_id, amount, date) VALUES (?, ?, ?)",
		p.UserID, p.Amount.String(), formatDate(p.Date),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("user %d: %w", p.UserID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read payment id: %w", err)
	}
	p.ID = id
	return nil
}

// ListPaymentsByUser returns a user's payments, oldest first.
func (s *SQLiteStore) ListPaymentsByUser(ctx context.Context, userID int64) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, date FROM payments WHERE user_id = ? ORDER BY date, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{UserID: userID}
		var amount, date string
		if err := rows.Scan(&p.ID, &amount, &date); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse payment amount %q: %w", amount, err)
		}
		if p.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}
