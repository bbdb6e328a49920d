// Package settlement generates per-user settlement reports for a billing
// period from the ledger.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/messbook/internal/calculator"
	"github.com/mmynk/messbook/internal/events"
	"github.com/mmynk/messbook/internal/metrics"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// ErrStorageUnavailable is returned when any ledger read fails. The
// underlying error is wrapped alongside it. Nothing is retried.
var ErrStorageUnavailable = errors.New("settlement storage unavailable")

// PeriodResolver looks up a period by id.
type PeriodResolver interface {
	GetPeriod(ctx context.Context, id int64) (*models.Period, error)
}

// Result is the output of Generate.
//
// Period is nil when the requested period does not exist; MealRate is then
// zero and Reports is empty. A period that exists but has no users also has
// empty Reports, so callers must check Period to tell the two apart.
type Result struct {
	Period   *models.Period
	MealRate decimal.Decimal
	Reports  []models.SettlementReport
}

// Found reports whether the requested period exists.
func (r *Result) Found() bool {
	return r.Period != nil
}

// Engine computes settlements. It holds no state between calls.
type Engine struct {
	periods   PeriodResolver
	ledger    storage.LedgerReader
	metrics   *metrics.Metrics
	publisher events.Publisher
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics records settlement counts and latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithPublisher emits a settlement.generated event after each successful run.
func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

// NewEngine creates an Engine reading periods and ledger aggregates from
// the given stores.
func NewEngine(periods PeriodResolver, ledger storage.LedgerReader, opts ...Option) *Engine {
	e := &Engine{
		periods:   periods,
		ledger:    ledger,
		publisher: events.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate computes the settlement for periodID.
//
// The ledger reads run concurrently and are not wrapped in a transaction, so
// rows written while Generate runs may or may not be counted.
func (e *Engine) Generate(ctx context.Context, periodID int64) (*Result, error) {
	start := time.Now()

	p, err := e.periods.GetPeriod(ctx, periodID)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Info("Settlement requested for unknown period", "period_id", periodID)
		e.observe(metrics.OutcomeNotFound, start)
		return &Result{MealRate: decimal.Zero, Reports: []models.SettlementReport{}}, nil
	}
	if err != nil {
		e.observe(metrics.OutcomeError, start)
		return nil, fmt.Errorf("%w: failed to resolve period %d: %w", ErrStorageUnavailable, periodID, err)
	}

	var (
		totalExpenses decimal.Decimal
		totalMeals    int64
		users         []models.UserRef
		totals        calculator.PeriodTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalExpenses, err = e.ledger.TotalExpensesInPeriod(gctx, p.Month, p.Year)
		return err
	})
	g.Go(func() (err error) {
		totalMeals, err = e.ledger.TotalMealsInPeriod(gctx, p.Month, p.Year)
		return err
	})
	g.Go(func() (err error) {
		totals.Meals, err = e.ledger.PerUserMealCounts(gctx, p.Month, p.Year)
		return err
	})
	g.Go(func() (err error) {
		totals.Payments, err = e.ledger.PerUserPayments(gctx, p.Month, p.Year)
		return err
	})
	g.Go(func() (err error) {
		totals.Shopping, err = e.ledger.PerUserShoppingExpenses(gctx, p.Month, p.Year)
		return err
	})
	g.Go(func() (err error) {
		users, err = e.ledger.AllUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("Settlement ledger read failed", "period_id", periodID, "error", err)
		e.observe(metrics.OutcomeError, start)
		return nil, fmt.Errorf("%w: period %d: %w", ErrStorageUnavailable, periodID, err)
	}

	rate := calculator.MealRate(totalExpenses, totalMeals)
	result := &Result{
		Period:   p,
		MealRate: rate,
		Reports:  calculator.Settle(rate, users, totals),
	}

	e.observe(metrics.OutcomeOK, start)
	slog.Info("Settlement generated",
		"period_id", p.ID,
		"month", p.Month,
		"year", p.Year,
		"meal_rate", rate.String(),
		"users", len(result.Reports),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	e.publish(ctx, events.New(events.TypeSettlementGenerated, events.SettlementGenerated{
		PeriodID: p.ID,
		Month:    p.Month,
		Year:     p.Year,
		MealRate: rate.String(),
		Users:    len(result.Reports),
	}))

	return result, nil
}

// Overview computes every user's all-time position: total payments against
// total expenses they paid for.
func (e *Engine) Overview(ctx context.Context) ([]models.FinancialReport, error) {
	var (
		users              []models.UserRef
		payments, shopping map[int64]decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = e.ledger.AllUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		payments, shopping, err = e.ledger.AllTimeTotals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: overview: %w", ErrStorageUnavailable, err)
	}

	return calculator.Overview(users, payments, shopping), nil
}

func (e *Engine) observe(outcome string, start time.Time) {
	if e.metrics == nil {
		return
	}
	e.metrics.Settlements.WithLabelValues(outcome).Inc()
	if outcome == metrics.OutcomeOK {
		e.metrics.SettlementDuration.Observe(time.Since(start).Seconds())
	}
}

// publish never fails the settlement; a broken bus is logged and ignored.
func (e *Engine) publish(ctx context.Context, ev events.Event) {
	if err := e.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("Failed to publish event", "type", ev.Type, "error", err)
	}
}
