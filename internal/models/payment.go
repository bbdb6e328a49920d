package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a direct cash contribution by a user into the shared pool.
// Payments are append-only.
type Payment struct {
	ID     int64
	UserID int64
	Amount decimal.Decimal
	Date   time.Time
}
