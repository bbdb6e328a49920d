package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/messbook/internal/events"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
	"github.com/mmynk/messbook/pkg/api"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService: attendance,
// expenses and payments.
type LedgerService struct {
	store     storage.Store
	publisher events.Publisher
}

// NewLedgerService creates a new LedgerService. A nil publisher drops events.
func NewLedgerService(store storage.Store, publisher events.Publisher) *LedgerService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &LedgerService{store: store, publisher: publisher}
}

// requirePositive rejects zero and negative amounts.
func requirePositive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", models.ErrInvalidInput, field, d.String())
	}
	return nil
}

func (s *LedgerService) publish(ctx context.Context, ev events.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("Failed to publish event", "type", ev.Type, "error", err)
	}
}

// RecordAttendance records that a user ate one meal.
func (s *LedgerService) RecordAttendance(ctx context.Context, req *connect.Request[api.RecordAttendanceRequest]) (*connect.Response[api.RecordAttendanceResponse], error) {
	slog.Info("RecordAttendance request received",
		"user_id", req.Msg.UserID,
		"date", req.Msg.Date,
		"meal_type", req.Msg.MealType,
	)

	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, toConnectError("RecordAttendance", err)
	}
	mealType, err := models.ParseMealType(req.Msg.MealType)
	if err != nil {
		return nil, toConnectError("RecordAttendance", err)
	}

	rec := models.AttendanceRecord{UserID: req.Msg.UserID, Date: date, MealType: mealType}
	if err := s.store.RecordAttendance(ctx, rec); err != nil {
		return nil, toConnectError("RecordAttendance", err)
	}

	return connect.NewResponse(&api.RecordAttendanceResponse{}), nil
}

func attendanceBatch(req *api.AttendanceBatchRequest) ([]models.AttendanceRecord, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: at least one entry is required", models.ErrInvalidInput)
	}

	recs := make([]models.AttendanceRecord, len(req.Entries))
	for i, e := range req.Entries {
		mealType, err := models.ParseMealType(e.MealType)
		if err != nil {
			return nil, err
		}
		recs[i] = models.AttendanceRecord{UserID: e.UserID, Date: date, MealType: mealType}
	}
	return recs, nil
}

// AddAttendance records several meals on one date. Either every entry is
// stored or none is.
func (s *LedgerService) AddAttendance(ctx context.Context, req *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error) {
	slog.Info("AddAttendance request received", "date", req.Msg.Date, "entries", len(req.Msg.Entries))

	recs, err := attendanceBatch(req.Msg)
	if err != nil {
		return nil, toConnectError("AddAttendance", err)
	}
	if err := s.store.AddAttendance(ctx, recs); err != nil {
		return nil, toConnectError("AddAttendance", err)
	}

	slog.Info("AddAttendance successful", "date", req.Msg.Date, "count", len(recs))
	return connect.NewResponse(&api.AttendanceBatchResponse{Count: len(recs)}), nil
}

// DeleteAttendance removes several meals on one date.
func (s *LedgerService) DeleteAttendance(ctx context.Context, req *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error) {
	slog.Info("DeleteAttendance request received", "date", req.Msg.Date, "entries", len(req.Msg.Entries))

	recs, err := attendanceBatch(req.Msg)
	if err != nil {
		return nil, toConnectError("DeleteAttendance", err)
	}
	if err := s.store.DeleteAttendance(ctx, recs); err != nil {
		return nil, toConnectError("DeleteAttendance", err)
	}

	return connect.NewResponse(&api.AttendanceBatchResponse{Count: len(recs)}), nil
}

// ListAttendance returns who ate which meal on a date.
func (s *LedgerService) ListAttendance(ctx context.Context, req *connect.Request[api.ListAttendanceRequest]) (*connect.Response[api.ListAttendanceResponse], error) {
	slog.Info("ListAttendance request received", "date", req.Msg.Date)

	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, toConnectError("ListAttendance", err)
	}
	list, err := s.store.ListAttendance(ctx, date)
	if err != nil {
		return nil, toConnectError("ListAttendance", err)
	}

	entries := make([]api.MealAttendance, len(list))
	for i, a := range list {
		entries[i] = api.MealAttendance{UserID: a.UserID, UserName: a.UserName, MealType: string(a.MealType)}
	}
	return connect.NewResponse(&api.ListAttendanceResponse{Entries: entries}), nil
}

// AddExpense records a shared purchase.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"item", req.Msg.ItemName,
		"price", req.Msg.Price.String(),
		"paid_by", req.Msg.PaidByUserID,
	)

	date, err := models.ParseDate(req.Msg.PurchaseDate)
	if err != nil {
		return nil, toConnectError("AddExpense", err)
	}
	if err := requirePositive("price", req.Msg.Price); err != nil {
		return nil, toConnectError("AddExpense", err)
	}
	item := strings.TrimSpace(req.Msg.ItemName)
	if item == "" {
		return nil, invalidArgument("AddExpense", fmt.Errorf("item_name required"))
	}

	expense := &models.Expense{
		PurchaseDate: date,
		ItemName:     item,
		Price:        req.Msg.Price,
		PaidByUserID: req.Msg.PaidByUserID,
		Category:     models.ParseCategory(req.Msg.Category),
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, toConnectError("AddExpense", err)
	}

	slog.Info("Expense added", "expense_id", expense.ID)
	s.publish(ctx, events.New(events.TypeExpenseAdded, events.ExpenseAdded{
		ExpenseID:    expense.ID,
		PaidByUserID: expense.PaidByUserID,
		ItemName:     expense.ItemName,
		Price:        expense.Price.String(),
		Category:     string(expense.Category),
		PurchaseDate: date.Format(models.DateLayout),
	}))

	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// UpdateExpense changes the item name, price and category of an expense.
func (s *LedgerService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "expense_id", req.Msg.ExpenseID)

	if err := requirePositive("price", req.Msg.Price); err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}
	item := strings.TrimSpace(req.Msg.ItemName)
	if item == "" {
		return nil, invalidArgument("UpdateExpense", fmt.Errorf("item_name required"))
	}

	err := s.store.UpdateExpense(ctx, &models.Expense{
		ID:       req.Msg.ExpenseID,
		ItemName: item,
		Price:    req.Msg.Price,
		Category: models.ParseCategory(req.Msg.Category),
	})
	if err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}

	slog.Info("Expense updated", "expense_id", req.Msg.ExpenseID)
	return connect.NewResponse(&api.UpdateExpenseResponse{}), nil
}

// DeleteExpense removes an expense.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ListExpenses lists expenses, newest first, optionally for one category.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "category", req.Msg.Category)

	var category models.Category
	if strings.TrimSpace(req.Msg.Category) != "" {
		category = models.ParseCategory(req.Msg.Category)
	}

	expenses, err := s.store.ListExpenses(ctx, category)
	if err != nil {
		return nil, toConnectError("ListExpenses", err)
	}

	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}

	slog.Info("ListExpenses successful", "count", len(out))
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// RecordPayment records a cash contribution.
func (s *LedgerService) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	slog.Info("RecordPayment request received",
		"user_id", req.Msg.UserID,
		"amount", req.Msg.Amount.String(),
		"date", req.Msg.Date,
	)

	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, toConnectError("RecordPayment", err)
	}
	if err := requirePositive("amount", req.Msg.Amount); err != nil {
		return nil, toConnectError("RecordPayment", err)
	}

	payment := &models.Payment{UserID: req.Msg.UserID, Amount: req.Msg.Amount, Date: date}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return nil, toConnectError("RecordPayment", err)
	}

	slog.Info("Payment recorded", "payment_id", payment.ID)
	s.publish(ctx, events.New(events.TypePaymentRecorded, events.PaymentRecorded{
		PaymentID: payment.ID,
		UserID:    payment.UserID,
		Amount:    payment.Amount.String(),
		Date:      date.Format(models.DateLayout),
	}))

	return connect.NewResponse(&api.RecordPaymentResponse{Payment: toAPIPayment(payment)}), nil
}

// ListPayments lists a user's payments, oldest first.
func (s *LedgerService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	slog.Info("ListPayments request received", "user_id", req.Msg.UserID)

	payments, err := s.store.ListPaymentsByUser(ctx, req.Msg.UserID)
	if err != nil {
		return nil, toConnectError("ListPayments", err)
	}

	out := make([]api.Payment, len(payments))
	for i, p := range payments {
		out[i] = toAPIPayment(p)
	}
	return connect.NewResponse(&api.ListPaymentsResponse{Payments: out}), nil
}
