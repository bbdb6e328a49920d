// Package events publishes ledger activity to downstream consumers.
package events

import (
	"context"
	"sync"
	"time"
)

// Event types.
const (
	TypePaymentRecorded     = "payment.recorded"
	TypeExpenseAdded        = "expense.added"
	TypeSettlementGenerated = "settlement.generated"
)

// Event is the envelope written to the bus. Payload is JSON encoded by the
// publisher.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New stamps an event with the current time.
func New(eventType string, payload any) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Payload: payload}
}

// PaymentRecorded is the payload of TypePaymentRecorded.
type PaymentRecorded struct {
	PaymentID int64  `json:"payment_id"`
	UserID    int64  `json:"user_id"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
}

// ExpenseAdded is the payload of TypeExpenseAdded.
type ExpenseAdded struct {
	ExpenseID    int64  `json:"expense_id"`
	PaidByUserID int64  `json:"paid_by_user_id"`
	ItemName     string `json:"item_name"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	PurchaseDate string `json:"purchase_date"`
}

// SettlementGenerated is the payload of TypeSettlementGenerated.
type SettlementGenerated struct {
	PeriodID int64  `json:"period_id"`
	Month    string `json:"month"`
	Year     string `json:"year"`
	MealRate string `json:"meal_rate"`
	Users    int    `json:"users"`
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory. Useful in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
