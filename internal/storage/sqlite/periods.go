package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/period"
	"github.com/mmynk/messbook/internal/storage"
)

// CreatePeriod inserts a new meal period.
func (s *SQLiteStore) CreatePeriod(ctx context.Context, p *models.Period) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO meal_periods (month, year, month_number) VALUES (?, ?, ?)",
		p.Month, p.Year, period.MonthNumber(p.Month),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicatePeriod
		}
		return fmt.Errorf("failed to insert period: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read period id: %w", err)
	}
	p.ID = id
	return nil
}

// GetPeriod retrieves a meal period by ID.
func (s *SQLiteStore) GetPeriod(ctx context.Context, id int64) (*models.Period, error) {
	p := &models.Period{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, month, year FROM meal_periods WHERE id = ?", id,
	).Scan(&p.ID, &p.Month, &p.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("period %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}
	return p, nil
}

// ListPeriods returns all periods, most recent first.
func (s *SQLiteStore) ListPeriods(ctx context.Context) ([]*models.Period, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, month, year FROM meal_periods ORDER BY year DESC, month_number DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []*models.Period
	for rows.Next() {
		p := &models.Period{}
		if err := rows.Scan(&p.ID, &p.Month, &p.Year); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate periods: %w", err)
	}
	return periods, nil
}
