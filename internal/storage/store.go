// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/models"
)

// PeriodStore persists billing periods.
type PeriodStore interface {
	// CreatePeriod inserts a period and fills in period.ID.
	// Returns ErrDuplicatePeriod if (month, year) already exists.
	CreatePeriod(ctx context.Context, period *models.Period) error

	// GetPeriod returns ErrNotFound for unknown ids.
	GetPeriod(ctx context.Context, id int64) (*models.Period, error)

	// ListPeriods returns every period, most recent first.
	ListPeriods(ctx context.Context) ([]*models.Period, error)
}

// LedgerReader exposes the period-scoped aggregates the settlement engine
// consumes. A date is in period when its English month name equals month
// and its four digit year equals year.
type LedgerReader interface {
	TotalExpensesInPeriod(ctx context.Context, month, year string) (decimal.Decimal, error)
	TotalMealsInPeriod(ctx context.Context, month, year string) (int64, error)

	// Per-user maps may omit users with no activity.
	PerUserMealCounts(ctx context.Context, month, year string) (map[int64]int64, error)
	PerUserPayments(ctx context.Context, month, year string) (map[int64]decimal.Decimal, error)
	PerUserShoppingExpenses(ctx context.Context, month, year string) (map[int64]decimal.Decimal, error)

	// AllUsers returns every user ordered by id ascending.
	AllUsers(ctx context.Context) ([]models.UserRef, error)

	// AllTimeTotals returns, per user, all payments and all expenses paid for.
	AllTimeTotals(ctx context.Context) (payments, shopping map[int64]decimal.Decimal, err error)
}

// UserStore persists household members.
type UserStore interface {
	// CreateUser fills in user.ID. Returns ErrUsernameTaken on conflict.
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUserName(ctx context.Context, id int64, name string) error
}

// AttendanceStore persists meal attendance.
type AttendanceStore interface {
	// RecordAttendance returns ErrDuplicateAttendance if the slot is taken.
	RecordAttendance(ctx context.Context, rec models.AttendanceRecord) error

	// AddAttendance inserts every record or none of them.
	AddAttendance(ctx context.Context, recs []models.AttendanceRecord) error

	// DeleteAttendance removes every record or none of them.
	DeleteAttendance(ctx context.Context, recs []models.AttendanceRecord) error

	// ListAttendance returns the day's rows ordered by meal type, then user name.
	ListAttendance(ctx context.Context, date time.Time) ([]models.MealAttendance, error)
}

// ExpenseStore persists shared purchases.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, id int64) error

	// ListExpenses returns expenses newest first. An empty category lists all.
	ListExpenses(ctx context.Context, category models.Category) ([]*models.Expense, error)
}

// PaymentStore persists cash contributions. Payments are append-only.
type PaymentStore interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	ListPaymentsByUser(ctx context.Context, userID int64) ([]*models.Payment, error)
}

// MenuStore persists dishes and daily menus.
type MenuStore interface {
	// CreateMenuItem returns ErrDuplicateMenuItem if the name exists.
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)

	// ReplaceDailyMenu swaps the menu for menu.Date atomically.
	ReplaceDailyMenu(ctx context.Context, menu *models.DailyMenu) error

	// GetDailyMenu returns ErrNotFound when nothing is scheduled for date.
	GetDailyMenu(ctx context.Context, date time.Time) (*models.DailyMenu, error)

	// ListDailyMenus returns up to limit menus, newest date first.
	ListDailyMenus(ctx context.Context, limit int) ([]*models.DailyMenu, error)
}

// SettingsStore persists household preferences.
type SettingsStore interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, settings *models.Settings) error
}

// Store defines the full storage surface.
// This abstraction allows swapping storage backends (SQLite, in-memory)
// without changing the service layer.
type Store interface {
	PeriodStore
	LedgerReader
	UserStore
	AttendanceStore
	ExpenseStore
	PaymentStore
	MenuStore
	SettingsStore

	// Close releases any resources held by the store.
	Close() error
}
