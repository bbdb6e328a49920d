package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/messbook/internal/dbx"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// mealOrder sorts meal types in serving order rather than alphabetically.
const mealOrder = `CASE ma.meal_type WHEN 'Breakfast' THEN 1 WHEN 'Lunch' THEN 2 ELSE 3 END`

// RecordAttendance inserts a single attendance row.
func (s *SQLiteStore) RecordAttendance(ctx context.Context, rec models.AttendanceRecord) error {
	return insertAttendance(ctx, s.db, rec)
}

// AddAttendance inserts a batch of attendance rows in one transaction.
func (s *SQLiteStore) AddAttendance(ctx context.Context, recs []models.AttendanceRecord) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, rec := range recs {
			if err := insertAttendance(ctx, tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAttendance removes a batch of attendance rows in one transaction.
// Rows that do not exist are skipped.
func (s *SQLiteStore) DeleteAttendance(ctx context.Context, recs []models.AttendanceRecord) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, rec := range recs {
			_, err := tx.ExecContext(ctx,
				"DELETE FROM meal_attendance WHERE user_id = ? AND attendance_date = ? AND meal_type = ?",
				rec.UserID, formatDate(rec.Date), string(rec.MealType),
			)
			if err != nil {
				return fmt.Errorf("failed to delete attendance: %w", err)
			}
		}
		return nil
	})
}

// ListAttendance returns everyone who ate on date, joined with their names.
func (s *SQLiteStore) ListAttendance(ctx context.Context, date time.Time) ([]models.MealAttendance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ma.user_id, u.name, ma.meal_type
		FROM meal_attendance ma
		JOIN users u ON ma.user_id = u.id
		WHERE ma.attendance_date = ?
		ORDER BY `+mealOrder+`, u.name`,
		formatDate(date),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var list []models.MealAttendance
	for rows.Next() {
		var a models.MealAttendance
		var mealType string
		if err := rows.Scan(&a.UserID, &a.UserName, &mealType); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.MealType = models.MealType(mealType)
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return list, nil
}

func insertAttendance(ctx context.Context, db dbx.DBTX, rec models.AttendanceRecord) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO meal_attendance (user_id, attendance_date, meal_type) VALUES (?, ?, ?)",
		rec.UserID, formatDate(rec.Date), string(rec.MealType),
	)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return storage.ErrDuplicateAttendance
	case isForeignKeyViolation(err):
		return fmt.Errorf("user %d: %w", rec.UserID, storage.ErrNotFound)
	default:
		return fmt.Errorf("failed to insert attendance: %w", err)
	}
}
