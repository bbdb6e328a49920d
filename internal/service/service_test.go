package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/messbook/internal/auth"
	"github.com/mmynk/messbook/internal/events"
	"github.com/mmynk/messbook/internal/metrics"
	"github.com/mmynk/messbook/internal/middleware"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/period"
	"github.com/mmynk/messbook/internal/settlement"
	"github.com/mmynk/messbook/internal/storage/sqlite"
	"github.com/mmynk/messbook/pkg/api"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

// testClients bundles a client per service against one test server.
type testClients struct {
	periods    apiconnect.PeriodServiceClient
	settlement apiconnect.SettlementServiceClient
	ledger     apiconnect.LedgerServiceClient
	household  apiconnect.HouseholdServiceClient
	menus      apiconnect.MenuServiceClient
	store      *sqlite.SQLiteStore
	events     *events.Recorder
}

// testAuthInterceptor returns a Connect interceptor that sets a test identity in the context.
func testAuthInterceptor(id auth.Identity) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return next(middleware.WithIdentity(ctx, id), req)
		}
	}
}

// setupTestServer creates a test server backed by a temporary SQLite database.
// Every handler runs with the given interceptors.
func setupTestServer(t *testing.T, interceptors ...connect.Interceptor) *testClients {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "messbook-test-*.db")
	require.NoError(t, err)
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	store, err := sqlite.New(tmpFile.Name())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rec := &events.Recorder{}
	engine := settlement.NewEngine(store, store, settlement.WithPublisher(rec))
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewPeriodServiceHandler(NewPeriodService(period.NewRegistry(store)), opts))
	mux.Handle(apiconnect.NewSettlementServiceHandler(NewSettlementService(engine, store), opts))
	mux.Handle(apiconnect.NewLedgerServiceHandler(NewLedgerService(store, rec), opts))
	mux.Handle(apiconnect.NewHouseholdServiceHandler(NewHouseholdService(store), opts))
	mux.Handle(apiconnect.NewMenuServiceHandler(NewMenuService(store), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testClients{
		periods:    apiconnect.NewPeriodServiceClient(http.DefaultClient, server.URL),
		settlement: apiconnect.NewSettlementServiceClient(http.DefaultClient, server.URL),
		ledger:     apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		household:  apiconnect.NewHouseholdServiceClient(http.DefaultClient, server.URL),
		menus:      apiconnect.NewMenuServiceClient(http.DefaultClient, server.URL),
		store:      store,
		events:     rec,
	}
}

func setupAdminServer(t *testing.T) *testClients {
	return setupTestServer(t, testAuthInterceptor(auth.Identity{UserID: 1, Role: models.RoleAdmin}))
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	require.Error(t, err)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr), "expected connect error, got %v", err)
	assert.Equal(t, code, connectErr.Code(), connectErr.Message())
}

func createUser(t *testing.T, c *testClients, username, name, role string) api.User {
	t.Helper()
	resp, err := c.household.CreateUser(context.Background(), connect.NewRequest(&api.CreateUserRequest{
		Username: username, Name: name, Role: role,
	}))
	require.NoError(t, err)
	return resp.Msg.User
}

func createPeriod(t *testing.T, c *testClients, month, year string) api.Period {
	t.Helper()
	resp, err := c.periods.CreatePeriod(context.Background(), connect.NewRequest(&api.CreatePeriodRequest{Month: month, Year: year}))
	require.NoError(t, err)
	return resp.Msg.Period
}

func TestPeriodService(t *testing.T) {
	c := setupAdminServer(t)
	ctx := context.Background()

	t.Run("CreatePeriod canonicalises the month", func(t *testing.T) {
		p := createPeriod(t, c, "august", "2025")
		assert.NotZero(t, p.ID)
		assert.Equal(t, "August", p.Month)
	})

	t.Run("CreatePeriod rejects duplicates", func(t *testing.T) {
		_, err := c.periods.CreatePeriod(ctx, connect.NewRequest(&api.CreatePeriodRequest{Month: "AUGUST", Year: "2025"}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("CreatePeriod rejects bad input", func(t *testing.T) {
		_, err := c.periods.CreatePeriod(ctx, connect.NewRequest(&api.CreatePeriodRequest{Month: "Augst", Year: "2025"}))
		assertCode(t, err, connect.CodeInvalidArgument)
		_, err = c.periods.CreatePeriod(ctx, connect.NewRequest(&api.CreatePeriodRequest{Month: "May", Year: "25"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("ListPeriods is most recent first", func(t *testing.T) {
		createPeriod(t, c, "December", "2024")
		createPeriod(t, c, "September", "2025")

		resp, err := c.periods.ListPeriods(ctx, connect.NewRequest(&api.ListPeriodsRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Periods, 3)
		assert.Equal(t, "September", resp.Msg.Periods[0].Month)
		assert.Equal(t, "August", resp.Msg.Periods[1].Month)
		assert.Equal(t, "2024", resp.Msg.Periods[2].Year)
	})

	t.Run("GetPeriod unknown id", func(t *testing.T) {
		_, err := c.periods.GetPeriod(ctx, connect.NewRequest(&api.GetPeriodRequest{PeriodID: 999}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestSettlementService(t *testing.T) {
	c := setupAdminServer(t)
	ctx := context.Background()

	u1 := createUser(t, c, "u1", "U1", "Student")
	u2 := createUser(t, c, "u2", "U2", "Student")
	p := createPeriod(t, c, "August", "2025")

	// 300 spent over 100 meals: U1 eats 20 of them and the cook eats 80.
	cook := createUser(t, c, "cook", "Cook", "Staff")
	for day := 1; day <= 10; day++ {
		date := time.Date(2025, time.August, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		entries := []api.MealAttendance{
			{UserID: u1.ID, MealType: "Lunch"},
			{UserID: u1.ID, MealType: "Dinner"},
		}
		for _, mt := range []string{"breakfast", "lunch", "dinner"} {
			entries = append(entries, api.MealAttendance{UserID: cook.ID, MealType: mt})
		}
		_, err := c.ledger.AddAttendance(ctx, connect.NewRequest(&api.AttendanceBatchRequest{Date: date, Entries: entries}))
		require.NoError(t, err)
	}
	for day := 11; day <= 26; day++ {
		date := time.Date(2025, time.August, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		entries := []api.MealAttendance{
			{UserID: cook.ID, MealType: "Breakfast"},
			{UserID: cook.ID, MealType: "Lunch"},
			{UserID: cook.ID, MealType: "Dinner"},
		}
		_, err := c.ledger.AddAttendance(ctx, connect.NewRequest(&api.AttendanceBatchRequest{Date: date, Entries: entries}))
		require.NoError(t, err)
	}
	for _, mt := range []string{"Lunch", "Dinner"} {
		_, err := c.ledger.RecordAttendance(ctx, connect.NewRequest(&api.RecordAttendanceRequest{UserID: cook.ID, Date: "2025-08-28", MealType: mt}))
		require.NoError(t, err)
	}

	_, err := c.ledger.RecordPayment(ctx, connect.NewRequest(&api.RecordPaymentRequest{UserID: u2.ID, Amount: d("100"), Date: "2025-08-05"}))
	require.NoError(t, err)
	_, err = c.ledger.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
		PurchaseDate: "2025-08-02", ItemName: "Vegetables", Price: d("50"), PaidByUserID: u2.ID, Category: "Food",
	}))
	require.NoError(t, err)
	_, err = c.ledger.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
		PurchaseDate: "2025-08-03", ItemName: "Rice", Price: d("250"), PaidByUserID: cook.ID, Category: "Food",
	}))
	require.NoError(t, err)

	t.Run("GenerateSettlement", func(t *testing.T) {
		resp, err := c.settlement.GenerateSettlement(ctx, connect.NewRequest(&api.GenerateSettlementRequest{PeriodID: p.ID}))
		require.NoError(t, err)

		msg := resp.Msg
		assert.True(t, msg.PeriodFound)
		require.NotNil(t, msg.Period)
		assert.Equal(t, "August", msg.Period.Month)
		assert.Equal(t, "3.00", msg.MealRate.StringFixed(2))
		assert.Equal(t, "USD", msg.Currency)
		require.Len(t, msg.Reports, 3)

		assert.Equal(t, u1.ID, msg.Reports[0].UserID)
		assert.Equal(t, int64(20), msg.Reports[0].TotalMeals)
		assert.Equal(t, "-60.00", msg.Reports[0].FinalBalance.StringFixed(2))

		assert.Equal(t, u2.ID, msg.Reports[1].UserID)
		assert.Equal(t, "150.00", msg.Reports[1].FinalBalance.StringFixed(2))

		assert.Equal(t, cook.ID, msg.Reports[2].UserID)
		assert.Equal(t, int64(80), msg.Reports[2].TotalMeals)
		assert.Equal(t, "10.00", msg.Reports[2].FinalBalance.StringFixed(2))
	})

	t.Run("GenerateSettlement unknown period", func(t *testing.T) {
		resp, err := c.settlement.GenerateSettlement(ctx, connect.NewRequest(&api.GenerateSettlementRequest{PeriodID: 999}))
		require.NoError(t, err)
		assert.False(t, resp.Msg.PeriodFound)
		assert.Nil(t, resp.Msg.Period)
		assert.True(t, resp.Msg.MealRate.IsZero())
		assert.Empty(t, resp.Msg.Reports)
	})

	t.Run("GetFinancialOverview", func(t *testing.T) {
		resp, err := c.settlement.GetFinancialOverview(ctx, connect.NewRequest(&api.GetFinancialOverviewRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Reports, 3)
		assert.Equal(t, "50.00", resp.Msg.Reports[1].DebtOrSurplus.StringFixed(2))
		assert.Equal(t, "-250.00", resp.Msg.Reports[2].DebtOrSurplus.StringFixed(2))
	})

	t.Run("events published", func(t *testing.T) {
		var types []string
		for _, ev := range c.events.Events() {
			types = append(types, ev.Type)
		}
		assert.Contains(t, types, events.TypePaymentRecorded)
		assert.Contains(t, types, events.TypeExpenseAdded)
		assert.Contains(t, types, events.TypeSettlementGenerated)
	})
}

func TestSettlementService_StorageFailure(t *testing.T) {
	c := setupAdminServer(t)
	p := createPeriod(t, c, "August", "2025")

	// Closing the database makes every ledger read fail.
	require.NoError(t, c.store.Close())

	_, err := c.settlement.GenerateSettlement(context.Background(), connect.NewRequest(&api.GenerateSettlementRequest{PeriodID: p.ID}))
	assertCode(t, err, connect.CodeUnavailable)
	assert.Contains(t, err.Error(), "could not generate settlement: check period validity and underlying data")
}

func TestLedgerService(t *testing.T) {
	c := setupAdminServer(t)
	ctx := context.Background()
	alice := createUser(t, c, "alice", "Alice", "Student")

	t.Run("RecordAttendance duplicate", func(t *testing.T) {
		req := &api.RecordAttendanceRequest{UserID: alice.ID, Date: "2025-08-01", MealType: "Dinner"}
		_, err := c.ledger.RecordAttendance(ctx, connect.NewRequest(req))
		require.NoError(t, err)
		_, err = c.ledger.RecordAttendance(ctx, connect.NewRequest(req))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("RecordAttendance rejects unknown meal type", func(t *testing.T) {
		_, err := c.ledger.RecordAttendance(ctx, connect.NewRequest(&api.RecordAttendanceRequest{UserID: alice.ID, Date: "2025-08-01", MealType: "Brunch"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("RecordAttendance rejects bad date", func(t *testing.T) {
		_, err := c.ledger.RecordAttendance(ctx, connect.NewRequest(&api.RecordAttendanceRequest{UserID: alice.ID, Date: "01/08/2025", MealType: "Lunch"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("RecordAttendance unknown user", func(t *testing.T) {
		_, err := c.ledger.RecordAttendance(ctx, connect.NewRequest(&api.RecordAttendanceRequest{UserID: 999, Date: "2025-08-01", MealType: "Lunch"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("Add and delete attendance batch", func(t *testing.T) {
		batch := &api.AttendanceBatchRequest{Date: "2025-08-02", Entries: []api.MealAttendance{
			{UserID: alice.ID, MealType: "breakfast"},
			{UserID: alice.ID, MealType: "lunch"},
		}}
		resp, err := c.ledger.AddAttendance(ctx, connect.NewRequest(batch))
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Msg.Count)

		list, err := c.ledger.ListAttendance(ctx, connect.NewRequest(&api.ListAttendanceRequest{Date: "2025-08-02"}))
		require.NoError(t, err)
		require.Len(t, list.Msg.Entries, 2)
		assert.Equal(t, "Breakfast", list.Msg.Entries[0].MealType)
		assert.Equal(t, "Alice", list.Msg.Entries[0].UserName)

		_, err = c.ledger.DeleteAttendance(ctx, connect.NewRequest(batch))
		require.NoError(t, err)
		list, err = c.ledger.ListAttendance(ctx, connect.NewRequest(&api.ListAttendanceRequest{Date: "2025-08-02"}))
		require.NoError(t, err)
		assert.Empty(t, list.Msg.Entries)
	})

	t.Run("AddAttendance empty batch", func(t *testing.T) {
		_, err := c.ledger.AddAttendance(ctx, connect.NewRequest(&api.AttendanceBatchRequest{Date: "2025-08-02"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("Expense lifecycle", func(t *testing.T) {
		added, err := c.ledger.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
			PurchaseDate: "2025-08-03", ItemName: "Gas", Price: d("42.10"), PaidByUserID: alice.ID, Category: "utilities",
		}))
		require.NoError(t, err)
		exp := added.Msg.Expense
		assert.Equal(t, "Utilities", exp.Category)

		_, err = c.ledger.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
			PurchaseDate: "2025-08-04", ItemName: "Soap", Price: d("3"), PaidByUserID: alice.ID, Category: "Toiletries",
		}))
		require.NoError(t, err)

		other, err := c.ledger.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{Category: "Other"}))
		require.NoError(t, err)
		require.Len(t, other.Msg.Expenses, 1)
		assert.Equal(t, "Soap", other.Msg.Expenses[0].ItemName)

		_, err = c.ledger.UpdateExpense(ctx, connect.NewRequest(&api.UpdateExpenseRequest{
			ExpenseID: exp.ID, ItemName: "Cooking gas", Price: d("45"), Category: "Utilities",
		}))
		require.NoError(t, err)

		all, err := c.ledger.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{}))
		require.NoError(t, err)
		require.Len(t, all.Msg.Expenses, 2)
		assert.Equal(t, "Soap", all.Msg.Expenses[0].ItemName)
		assert.Equal(t, "Cooking gas", all.Msg.Expenses[1].ItemName)
		assert.True(t, all.Msg.Expenses[1].Price.Equal(d("45")))

		_, err = c.ledger.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{ExpenseID: exp.ID}))
		require.NoError(t, err)
		_, err = c.ledger.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{ExpenseID: exp.ID}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("AddExpense rejects non-positive price", func(t *testing.T) {
		_, err := c.ledger.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
			PurchaseDate: "2025-08-03", ItemName: "Refund", Price: d("-5"), PaidByUserID: alice.ID,
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("Payments", func(t *testing.T) {
		_, err := c.ledger.RecordPayment(ctx, connect.NewRequest(&api.RecordPaymentRequest{UserID: alice.ID, Amount: d("0"), Date: "2025-08-01"}))
		assertCode(t, err, connect.CodeInvalidArgument)

		resp, err := c.ledger.RecordPayment(ctx, connect.NewRequest(&api.RecordPaymentRequest{UserID: alice.ID, Amount: d("12.34"), Date: "2025-08-01"}))
		require.NoError(t, err)
		assert.NotZero(t, resp.Msg.Payment.ID)

		list, err := c.ledger.ListPayments(ctx, connect.NewRequest(&api.ListPaymentsRequest{UserID: alice.ID}))
		require.NoError(t, err)
		require.Len(t, list.Msg.Payments, 1)
		assert.Equal(t, "12.34", list.Msg.Payments[0].Amount.StringFixed(2))
		assert.Equal(t, "2025-08-01", list.Msg.Payments[0].Date)
	})
}

func TestHouseholdService(t *testing.T) {
	c := setupAdminServer(t)
	ctx := context.Background()

	t.Run("CreateUser defaults unknown roles to Student", func(t *testing.T) {
		u := createUser(t, c, "zed", "Zed", "Overlord")
		assert.Equal(t, "Student", u.Role)
	})

	t.Run("CreateUser duplicate username", func(t *testing.T) {
		_, err := c.household.CreateUser(ctx, connect.NewRequest(&api.CreateUserRequest{Username: "zed", Name: "Other"}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		u := createUser(t, c, "amy", "Amy", "Staff")
		resp, err := c.household.UpdateProfile(ctx, connect.NewRequest(&api.UpdateProfileRequest{UserID: u.ID, Name: "Amelia"}))
		require.NoError(t, err)
		assert.Equal(t, "Amelia", resp.Msg.User.Name)
		assert.Equal(t, "Staff", resp.Msg.User.Role)

		_, err = c.household.UpdateProfile(ctx, connect.NewRequest(&api.UpdateProfileRequest{UserID: 999, Name: "Nobody"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("ListUsers", func(t *testing.T) {
		resp, err := c.household.ListUsers(ctx, connect.NewRequest(&api.ListUsersRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Users, 2)
		assert.Less(t, resp.Msg.Users[0].ID, resp.Msg.Users[1].ID)
	})

	t.Run("Settings", func(t *testing.T) {
		resp, err := c.household.GetSettings(ctx, connect.NewRequest(&api.GetSettingsRequest{}))
		require.NoError(t, err)
		assert.Equal(t, "USD", resp.Msg.Settings.Currency)

		_, err = c.household.UpdateSettings(ctx, connect.NewRequest(&api.UpdateSettingsRequest{Currency: "taka"}))
		assertCode(t, err, connect.CodeInvalidArgument)

		updated, err := c.household.UpdateSettings(ctx, connect.NewRequest(&api.UpdateSettingsRequest{Currency: "bdt"}))
		require.NoError(t, err)
		assert.Equal(t, "BDT", updated.Msg.Settings.Currency)
	})
}

func TestHouseholdService_UpdateProfileOnlySelf(t *testing.T) {
	c := setupTestServer(t, testAuthInterceptor(auth.Identity{UserID: 1, Role: models.RoleStudent}))
	ctx := context.Background()

	self := createUser(t, c, "me", "Me", "Student")
	other := createUser(t, c, "you", "You", "Student")
	require.Equal(t, int64(1), self.ID)

	_, err := c.household.UpdateProfile(ctx, connect.NewRequest(&api.UpdateProfileRequest{UserID: other.ID, Name: "Hacked"}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = c.household.UpdateProfile(ctx, connect.NewRequest(&api.UpdateProfileRequest{UserID: self.ID, Name: "Still me"}))
	require.NoError(t, err)
}

func TestMenuService(t *testing.T) {
	c := setupAdminServer(t)
	ctx := context.Background()

	ids := map[string]int64{}
	for _, name := range []string{"Chicken Curry", "Dal", "Rice", "Paratha"} {
		resp, err := c.menus.CreateMenuItem(ctx, connect.NewRequest(&api.CreateMenuItemRequest{Name: name}))
		require.NoError(t, err)
		ids[name] = resp.Msg.Item.ID
	}

	t.Run("CreateMenuItem duplicate", func(t *testing.T) {
		_, err := c.menus.CreateMenuItem(ctx, connect.NewRequest(&api.CreateMenuItemRequest{Name: "Dal"}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("ListMenuItems sorted by name", func(t *testing.T) {
		resp, err := c.menus.ListMenuItems(ctx, connect.NewRequest(&api.ListMenuItemsRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Items, 4)
		assert.Equal(t, "Chicken Curry", resp.Msg.Items[0].Name)
		assert.Equal(t, "Rice", resp.Msg.Items[3].Name)
	})

	t.Run("SearchMenuItems tolerates typos", func(t *testing.T) {
		resp, err := c.menus.SearchMenuItems(ctx, connect.NewRequest(&api.SearchMenuItemsRequest{Query: "chiken cury"}))
		require.NoError(t, err)
		require.NotEmpty(t, resp.Msg.Items)
		assert.Equal(t, "Chicken Curry", resp.Msg.Items[0].Name)
	})

	t.Run("SetDailyMenu replaces atomically", func(t *testing.T) {
		resp, err := c.menus.SetDailyMenu(ctx, connect.NewRequest(&api.SetDailyMenuRequest{
			Date:      "2025-08-03",
			Breakfast: []int64{ids["Paratha"]},
			Dinner:    []int64{ids["Rice"], ids["Chicken Curry"]},
		}))
		require.NoError(t, err)
		assert.Len(t, resp.Msg.Menu.Breakfast, 1)
		assert.Len(t, resp.Msg.Menu.Dinner, 2)
		assert.Empty(t, resp.Msg.Menu.Lunch)

		_, err = c.menus.SetDailyMenu(ctx, connect.NewRequest(&api.SetDailyMenuRequest{
			Date:  "2025-08-03",
			Lunch: []int64{ids["Dal"], 999},
		}))
		assertCode(t, err, connect.CodeNotFound)

		got, err := c.menus.GetDailyMenu(ctx, connect.NewRequest(&api.GetDailyMenuRequest{Date: "2025-08-03"}))
		require.NoError(t, err)
		assert.Len(t, got.Msg.Menu.Dinner, 2)
		assert.Empty(t, got.Msg.Menu.Lunch)
	})

	t.Run("GetDailyMenu missing", func(t *testing.T) {
		_, err := c.menus.GetDailyMenu(ctx, connect.NewRequest(&api.GetDailyMenuRequest{Date: "2030-01-01"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("ListDailyMenus newest first", func(t *testing.T) {
		_, err := c.menus.SetDailyMenu(ctx, connect.NewRequest(&api.SetDailyMenuRequest{
			Date:  "2025-08-04",
			Lunch: []int64{ids["Dal"]},
		}))
		require.NoError(t, err)

		resp, err := c.menus.ListDailyMenus(ctx, connect.NewRequest(&api.ListDailyMenusRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Menus, 2)
		assert.Equal(t, "2025-08-04", resp.Msg.Menus[0].Date)
	})
}

func TestMetricsInterceptor(t *testing.T) {
	_, m := metrics.NewRegistry()
	c := setupTestServer(t, middleware.MetricsInterceptor(m), testAuthInterceptor(auth.Identity{UserID: 1, Role: models.RoleAdmin}))
	ctx := context.Background()

	createPeriod(t, c, "May", "2025")
	_, err := c.periods.CreatePeriod(ctx, connect.NewRequest(&api.CreatePeriodRequest{Month: "May", Year: "2025"}))
	require.Error(t, err)

	proc := apiconnect.PeriodServiceCreatePeriodProcedure
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(proc, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(proc, connect.CodeAlreadyExists.String())))
}
