// Package memory is an in-memory implementation of storage.Store.
// It applies the same period-matching and uniqueness rules as the SQLite
// store and is safe for concurrent use.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/period"
	"github.com/mmynk/messbook/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type attendanceKey struct {
	userID   int64
	date     string
	mealType models.MealType
}

// Store keeps every table in maps guarded by a single RWMutex.
type Store struct {
	mu sync.RWMutex

	nextID int64

	periods    map[int64]*models.Period
	users      map[int64]*models.User
	attendance map[attendanceKey]models.AttendanceRecord
	expenses   map[int64]*models.Expense
	payments   map[int64]*models.Payment
	menuItems  map[int64]models.MenuItem
	menus      map[string]*models.DailyMenu
	settings   models.Settings
}

// New returns an empty store.
func New() *Store {
	return &Store{
		periods:    make(map[int64]*models.Period),
		users:      make(map[int64]*models.User),
		attendance: make(map[attendanceKey]models.AttendanceRecord),
		expenses:   make(map[int64]*models.Expense),
		payments:   make(map[int64]*models.Payment),
		menuItems:  make(map[int64]models.MenuItem),
		menus:      make(map[string]*models.DailyMenu),
		settings:   models.Settings{Currency: models.DefaultCurrency},
	}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) newID() int64 {
	s.nextID++
	return s.nextID
}

func dateKey(t time.Time) string {
	return t.Format(models.DateLayout)
}

// Periods

func (s *Store) CreatePeriod(_ context.Context, p *models.Period) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.periods {
		if existing.Month == p.Month && existing.Year == p.Year {
			return storage.ErrDuplicatePeriod
		}
	}
	p.ID = s.newID()
	cp := *p
	s.periods[p.ID] = &cp
	return nil
}

func (s *Store) GetPeriod(_ context.Context, id int64) (*models.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.periods[id]
	if !ok {
		return nil, fmt.Errorf("period %d: %w", id, storage.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListPeriods(_ context.Context) ([]*models.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Period, 0, len(s.periods))
	for _, p := range s.periods {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return period.Less(out[i], out[j]) })
	return out, nil
}

// Users

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return storage.ErrUsernameTaken
		}
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}
	user.ID = s.newID()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (s *Store) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateUserName(_ context.Context, id int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}
	u.Name = name
	return nil
}

// Attendance

func (s *Store) RecordAttendance(ctx context.Context, rec models.AttendanceRecord) error {
	return s.AddAttendance(ctx, []models.AttendanceRecord{rec})
}

func (s *Store) AddAttendance(_ context.Context, recs []models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before touching the map.
	seen := make(map[attendanceKey]bool, len(recs))
	for _, rec := range recs {
		if _, ok := s.users[rec.UserID]; !ok {
			return fmt.Errorf("user %d: %w", rec.UserID, storage.ErrNotFound)
		}
		k := attendanceKey{rec.UserID, dateKey(rec.Date), rec.MealType}
		if _, dup := s.attendance[k]; dup || seen[k] {
			return storage.ErrDuplicateAttendance
		}
		seen[k] = true
	}
	for _, rec := range recs {
		s.attendance[attendanceKey{rec.UserID, dateKey(rec.Date), rec.MealType}] = rec
	}
	return nil
}

func (s *Store) DeleteAttendance(_ context.Context, recs []models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range recs {
		delete(s.attendance, attendanceKey{rec.UserID, dateKey(rec.Date), rec.MealType})
	}
	return nil
}

func (s *Store) ListAttendance(_ context.Context, date time.Time) ([]models.MealAttendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := dateKey(date)
	var out []models.MealAttendance
	for k := range s.attendance {
		if k.date != day {
			continue
		}
		out = append(out, models.MealAttendance{
			UserID:   k.userID,
			UserName: s.users[k.userID].Name,
			MealType: k.mealType,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if oi, oj := mealRank(out[i].MealType), mealRank(out[j].MealType); oi != oj {
			return oi < oj
		}
		return out[i].UserName < out[j].UserName
	})
	return out, nil
}

func mealRank(mt models.MealType) int {
	for i, m := range models.MealTypes {
		if m == mt {
			return i
		}
	}
	return len(models.MealTypes)
}

// Expenses

func (s *Store) CreateExpense(_ context.Context, e *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[e.PaidByUserID]; !ok {
		return fmt.Errorf("user %d: %w", e.PaidByUserID, storage.ErrNotFound)
	}
	e.ID = s.newID()
	cp := *e
	s.expenses[e.ID] = &cp
	return nil
}

func (s *Store) UpdateExpense(_ context.Context, e *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.expenses[e.ID]
	if !ok {
		return fmt.Errorf("expense %d: %w", e.ID, storage.ErrNotFound)
	}
	existing.ItemName = e.ItemName
	existing.Price = e.Price
	existing.Category = e.Category
	return nil
}

func (s *Store) DeleteExpense(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return fmt.Errorf("expense %d: %w", id, storage.ErrNotFound)
	}
	delete(s.expenses, id)
	return nil
}

func (s *Store) ListExpenses(_ context.Context, category models.Category) ([]*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Expense
	for _, e := range s.expenses {
		if category != "" && e.Category != category {
			continue
		}
		cp := *e
		cp.PaidByUserName = s.users[e.PaidByUserID].Name
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PurchaseDate.Equal(out[j].PurchaseDate) {
			return out[i].PurchaseDate.After(out[j].PurchaseDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Payments

func (s *Store) CreatePayment(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[p.UserID]; !ok {
		return fmt.Errorf("user %d: %w", p.UserID, storage.ErrNotFound)
	}
	p.ID = s.newID()
	cp := *p
	s.payments[p.ID] = &cp
	return nil
}

func (s *Store) ListPaymentsByUser(_ context.Context, userID int64) ([]*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Payment
	for _, p := range s.payments {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Menus

func (s *Store) CreateMenuItem(_ context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.menuItems {
		if existing.Name == item.Name {
			return storage.ErrDuplicateMenuItem
		}
	}
	item.ID = s.newID()
	s.menuItems[item.ID] = *item
	return nil
}

func (s *Store) ListMenuItems(_ context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) ReplaceDailyMenu(_ context.Context, menu *models.DailyMenu) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := &models.DailyMenu{Date: menu.Date}
	for _, mt := range models.MealTypes {
		seen := make(map[int64]bool)
		for _, ref := range menu.Items(mt) {
			item, ok := s.menuItems[ref.ID]
			if !ok {
				return fmt.Errorf("menu item %d: %w", ref.ID, storage.ErrNotFound)
			}
			if seen[ref.ID] {
				return fmt.Errorf("%w: menu item %d listed twice for %s", models.ErrInvalidInput, ref.ID, mt)
			}
			seen[ref.ID] = true
			next.Add(mt, item)
		}
	}

	key := dateKey(menu.Date)
	if len(next.Breakfast)+len(next.Lunch)+len(next.Dinner) == 0 {
		delete(s.menus, key)
		return nil
	}
	for _, mt := range models.MealTypes {
		items := next.Items(mt)
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}
	s.menus[key] = next
	return nil
}

func (s *Store) GetDailyMenu(_ context.Context, date time.Time) (*models.DailyMenu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.menus[dateKey(date)]
	if !ok {
		return nil, fmt.Errorf("menu for %s: %w", dateKey(date), storage.ErrNotFound)
	}
	return copyMenu(m), nil
}

func (s *Store) ListDailyMenus(_ context.Context, limit int) ([]*models.DailyMenu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.menus))
	for k := range s.menus {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if limit >= 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	out := make([]*models.DailyMenu, 0, len(keys))
	for _, k := range keys {
		out = append(out, copyMenu(s.menus[k]))
	}
	return out, nil
}

func copyMenu(m *models.DailyMenu) *models.DailyMenu {
	return &models.DailyMenu{
		Date:      m.Date,
		Breakfast: append([]models.MenuItem(nil), m.Breakfast...),
		Lunch:     append([]models.MenuItem(nil), m.Lunch...),
		Dinner:    append([]models.MenuItem(nil), m.Dinner...),
	}
}

// Settings

func (s *Store) GetSettings(_ context.Context) (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := s.settings
	return &cp, nil
}

func (s *Store) UpdateSettings(_ context.Context, settings *models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = models.Settings{Currency: strings.TrimSpace(settings.Currency)}
	return nil
}
