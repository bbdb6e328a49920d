package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/messbook/internal/dbx"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// CreateMenuItem adds a dish to the catalogue.
func (s *SQLiteStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	res, err := s.db.ExecContext(ctx, "INSERT INTO menu_items (name) VALUES (?)", item.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateMenuItem
		}
		return fmt.Errorf("failed to insert menu item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read menu item id: %w", err)
	}
	item.ID = id
	return nil
}

// ListMenuItems returns the catalogue ordered by name.
func (s *SQLiteStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM menu_items ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return items, nil
}

// ReplaceDailyMenu deletes whatever is scheduled for menu.Date and inserts
// the new slots. Either the whole new menu lands or the old one stays.
func (s *SQLiteStore) ReplaceDailyMenu(ctx context.Context, menu *models.DailyMenu) error {
	date := formatDate(menu.Date)
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM daily_menus WHERE menu_date = ?", date); err != nil {
			return fmt.Errorf("failed to clear daily menu: %w", err)
		}

		for _, mt := range models.MealTypes {
			for _, item := range menu.Items(mt) {
				_, err := tx.ExecContext(ctx,
					"INSERT INTO daily_menus (menu_date, meal_type, menu_item_id) VALUES (?, ?, ?)",
					date, string(mt), item.ID,
				)
				switch {
				case err == nil:
				case isForeignKeyViolation(err):
					return fmt.Errorf("menu item %d: %w", item.ID, storage.ErrNotFound)
				case isUniqueViolation(err):
					return fmt.Errorf("%w: menu item %d listed twice for %s", models.ErrInvalidInput, item.ID, mt)
				default:
					return fmt.Errorf("failed to insert daily menu item: %w", err)
				}
			}
		}
		return nil
	})
}

// GetDailyMenu returns the menu scheduled for date.
func (s *SQLiteStore) GetDailyMenu(ctx context.Context, date time.Time) (*models.DailyMenu, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dm.meal_type, mi.id, mi.name
		FROM daily_menus dm
		JOIN menu_items mi ON dm.menu_item_id = mi.id
		WHERE dm.menu_date = ?
		ORDER BY mi.name`,
		formatDate(date),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily menu: %w", err)
	}
	defer rows.Close()

	menu := &models.DailyMenu{Date: date}
	found := false
	for rows.Next() {
		var mealType string
		var item models.MenuItem
		if err := rows.Scan(&mealType, &item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan daily menu item: %w", err)
		}
		menu.Add(models.MealType(mealType), item)
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily menu: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("menu for %s: %w", formatDate(date), storage.ErrNotFound)
	}
	return menu, nil
}

// ListDailyMenus returns up to limit menus, newest date first.
func (s *SQLiteStore) ListDailyMenus(ctx context.Context, limit int) ([]*models.DailyMenu, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT menu_date FROM daily_menus ORDER BY menu_date DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu dates: %w", err)
	}

	var dates []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan menu date: %w", err)
		}
		d, err := parseDate(raw)
		if err != nil {
			rows.Close()
			return nil, err
		}
		dates = append(dates, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu dates: %w", err)
	}

	menus := make([]*models.DailyMenu, 0, len(dates))
	for _, d := range dates {
		menu, err := s.GetDailyMenu(ctx, d)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, nil
}
