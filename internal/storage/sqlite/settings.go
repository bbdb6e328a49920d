package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/messbook/internal/models"
)

// GetSettings returns the household settings, falling back to defaults
// when the row is missing.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings := &models.Settings{}
	err := s.db.QueryRowContext(ctx, "SELECT currency FROM settings WHERE id = 1").Scan(&settings.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.Settings{Currency: models.DefaultCurrency}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings stores the household settings.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, settings *models.Settings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (id, currency) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET currency = excluded.currency
	`, settings.Currency)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
