package period

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// Registry creates and resolves billing periods.
type Registry struct {
	store storage.PeriodStore
}

// NewRegistry creates a Registry backed by store.
func NewRegistry(store storage.PeriodStore) *Registry {
	return &Registry{store: store}
}

// Create registers a new period after canonicalising the month name.
// Returns storage.ErrDuplicatePeriod if the period already exists.
func (r *Registry) Create(ctx context.Context, month, year string) (*models.Period, error) {
	m, err := CanonicalMonth(month)
	if err != nil {
		return nil, err
	}
	y, err := ValidateYear(year)
	if err != nil {
		return nil, err
	}

	p := &models.Period{Month: m, Year: y}
	if err := r.store.CreatePeriod(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create period %s %s: %w", m, y, err)
	}

	slog.Info("Period created", "period_id", p.ID, "month", p.Month, "year", p.Year)
	return p, nil
}

// List returns all periods, most recent first.
func (r *Registry) List(ctx context.Context) ([]*models.Period, error) {
	return r.store.ListPeriods(ctx)
}

// Get resolves a period by id. Returns storage.ErrNotFound for unknown ids.
func (r *Registry) Get(ctx context.Context, id int64) (*models.Period, error) {
	return r.store.GetPeriod(ctx, id)
}
