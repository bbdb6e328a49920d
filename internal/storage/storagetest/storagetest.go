// Package storagetest holds behaviour tests shared by every storage.Store
// implementation.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// Run exercises store against the storage.Store contract. newStore must
// return an empty store; it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("Periods", func(t *testing.T) { testPeriods(t, newStore(t)) })
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Attendance", func(t *testing.T) { testAttendance(t, newStore(t)) })
	t.Run("Expenses", func(t *testing.T) { testExpenses(t, newStore(t)) })
	t.Run("Payments", func(t *testing.T) { testPayments(t, newStore(t)) })
	t.Run("Menus", func(t *testing.T) { testMenus(t, newStore(t)) })
	t.Run("Settings", func(t *testing.T) { testSettings(t, newStore(t)) })
	t.Run("Ledger", func(t *testing.T) { testLedger(t, newStore(t)) })
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustUser(t *testing.T, s storage.Store, username, name string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Name: name, Role: models.RoleStudent}
	require.NoError(t, s.CreateUser(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

func testPeriods(t *testing.T, s storage.Store) {
	ctx := context.Background()

	aug := &models.Period{Month: "August", Year: "2025"}
	require.NoError(t, s.CreatePeriod(ctx, aug))
	assert.NotZero(t, aug.ID)

	err := s.CreatePeriod(ctx, &models.Period{Month: "August", Year: "2025"})
	assert.ErrorIs(t, err, storage.ErrDuplicatePeriod)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	for _, p := range []*models.Period{
		{Month: "December", Year: "2024"},
		{Month: "February", Year: "2025"},
		{Month: "January", Year: "2026"},
	} {
		require.NoError(t, s.CreatePeriod(ctx, p))
	}

	got, err := s.GetPeriod(ctx, aug.ID)
	require.NoError(t, err)
	assert.Equal(t, "August", got.Month)
	assert.Equal(t, "2025", got.Year)

	_, err = s.GetPeriod(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	list, err := s.ListPeriods(ctx)
	require.NoError(t, err)
	var names []string
	for _, p := range list {
		names = append(names, p.Month+" "+p.Year)
	}
	assert.Equal(t, []string{"January 2026", "August 2025", "February 2025", "December 2024"}, names)
}

func testUsers(t *testing.T, s storage.Store) {
	ctx := context.Background()

	alice := mustUser(t, s, "alice", "Alice")
	bob := mustUser(t, s, "bob", "Bob")
	assert.Less(t, alice.ID, bob.ID)
	assert.NotZero(t, alice.CreatedAt)

	err := s.CreateUser(ctx, &models.User{Username: "alice", Name: "Other"})
	assert.ErrorIs(t, err, storage.ErrUsernameTaken)

	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, models.RoleStudent, got.Role)

	require.NoError(t, s.UpdateUserName(ctx, bob.ID, "Robert"))
	got, err = s.GetUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robert", got.Name)

	assert.ErrorIs(t, s.UpdateUserName(ctx, 9999, "Ghost"), storage.ErrNotFound)
	_, err = s.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, alice.ID, users[0].ID)
	assert.Equal(t, bob.ID, users[1].ID)
}

func testAttendance(t *testing.T, s storage.Store) {
	ctx := context.Background()
	zoe := mustUser(t, s, "zoe", "Zoe")
	amy := mustUser(t, s, "amy", "Amy")
	day := date(t, "2025-08-03")

	require.NoError(t, s.RecordAttendance(ctx, models.AttendanceRecord{UserID: zoe.ID, Date: day, MealType: models.MealDinner}))

	err := s.RecordAttendance(ctx, models.AttendanceRecord{UserID: zoe.ID, Date: day, MealType: models.MealDinner})
	assert.ErrorIs(t, err, storage.ErrDuplicateAttendance)

	err = s.RecordAttendance(ctx, models.AttendanceRecord{UserID: 9999, Date: day, MealType: models.MealLunch})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// A batch with one duplicate must leave nothing behind.
	err = s.AddAttendance(ctx, []models.AttendanceRecord{
		{UserID: amy.ID, Date: day, MealType: models.MealBreakfast},
		{UserID: zoe.ID, Date: day, MealType: models.MealDinner},
	})
	assert.ErrorIs(t, err, storage.ErrDuplicateAttendance)

	list, err := s.ListAttendance(ctx, day)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.AddAttendance(ctx, []models.AttendanceRecord{
		{UserID: zoe.ID, Date: day, MealType: models.MealBreakfast},
		{UserID: amy.ID, Date: day, MealType: models.MealBreakfast},
		{UserID: amy.ID, Date: day, MealType: models.MealLunch},
		{UserID: amy.ID, Date: date(t, "2025-08-04"), MealType: models.MealLunch},
	}))

	list, err = s.ListAttendance(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []models.MealAttendance{
		{UserID: amy.ID, UserName: "Amy", MealType: models.MealBreakfast},
		{UserID: zoe.ID, UserName: "Zoe", MealType: models.MealBreakfast},
		{UserID: amy.ID, UserName: "Amy", MealType: models.MealLunch},
		{UserID: zoe.ID, UserName: "Zoe", MealType: models.MealDinner},
	}, list)

	require.NoError(t, s.DeleteAttendance(ctx, []models.AttendanceRecord{
		{UserID: zoe.ID, Date: day, MealType: models.MealBreakfast},
		{UserID: zoe.ID, Date: day, MealType: models.MealLunch}, // never recorded
	}))
	list, err = s.ListAttendance(ctx, day)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = s.ListAttendance(ctx, date(t, "2025-08-05"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func testExpenses(t *testing.T, s storage.Store) {
	ctx := context.Background()
	bob := mustUser(t, s, "bob", "Bob")

	rice := &models.Expense{
		PurchaseDate: date(t, "2025-08-01"),
		ItemName:     "Rice",
		Price:        dec("120.50"),
		PaidByUserID: bob.ID,
		Category:     models.CategoryFood,
	}
	require.NoError(t, s.CreateExpense(ctx, rice))
	assert.NotZero(t, rice.ID)

	power := &models.Expense{
		PurchaseDate: date(t, "2025-08-10"),
		ItemName:     "Electricity",
		Price:        dec("80"),
		PaidByUserID: bob.ID,
		Category:     models.CategoryUtilities,
	}
	require.NoError(t, s.CreateExpense(ctx, power))

	err := s.CreateExpense(ctx, &models.Expense{
		PurchaseDate: date(t, "2025-08-01"),
		ItemName:     "Ghost",
		Price:        dec("1"),
		PaidByUserID: 9999,
		Category:     models.CategoryOther,
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := s.ListExpenses(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Electricity", all[0].ItemName)
	assert.Equal(t, "Bob", all[0].PaidByUserName)
	assert.True(t, all[1].Price.Equal(dec("120.5")))

	food, err := s.ListExpenses(ctx, models.CategoryFood)
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, rice.ID, food[0].ID)

	rice.Price = dec("99.99")
	rice.ItemName = "Basmati rice"
	require.NoError(t, s.UpdateExpense(ctx, rice))
	food, err = s.ListExpenses(ctx, models.CategoryFood)
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, "Basmati rice", food[0].ItemName)
	assert.True(t, food[0].Price.Equal(dec("99.99")))

	require.NoError(t, s.DeleteExpense(ctx, power.ID))
	assert.ErrorIs(t, s.DeleteExpense(ctx, power.ID), storage.ErrNotFound)
	assert.ErrorIs(t, s.UpdateExpense(ctx, power), storage.ErrNotFound)
}

func testPayments(t *testing.T, s storage.Store) {
	ctx := context.Background()
	alice := mustUser(t, s, "alice", "Alice")

	late := &models.Payment{UserID: alice.ID, Amount: dec("50"), Date: date(t, "2025-08-20")}
	early := &models.Payment{UserID: alice.ID, Amount: dec("25.25"), Date: date(t, "2025-08-02")}
	require.NoError(t, s.CreatePayment(ctx, late))
	require.NoError(t, s.CreatePayment(ctx, early))

	err := s.CreatePayment(ctx, &models.Payment{UserID: 9999, Amount: dec("1"), Date: date(t, "2025-08-02")})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	list, err := s.ListPaymentsByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.True(t, list[0].Amount.Equal(dec("25.25")))
	assert.Equal(t, late.ID, list[1].ID)
}

func testMenus(t *testing.T, s storage.Store) {
	ctx := context.Background()

	dal := &models.MenuItem{Name: "Dal"}
	rice := &models.MenuItem{Name: "Rice"}
	eggs := &models.MenuItem{Name: "Eggs"}
	for _, item := range []*models.MenuItem{dal, rice, eggs} {
		require.NoError(t, s.CreateMenuItem(ctx, item))
	}
	assert.ErrorIs(t, s.CreateMenuItem(ctx, &models.MenuItem{Name: "Dal"}), storage.ErrDuplicateMenuItem)

	items, err := s.ListMenuItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.MenuItem{*dal, *eggs, *rice}, items)

	day := date(t, "2025-08-03")
	_, err = s.GetDailyMenu(ctx, day)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.ReplaceDailyMenu(ctx, &models.DailyMenu{
		Date:      day,
		Breakfast: []models.MenuItem{*eggs},
		Lunch:     []models.MenuItem{*rice, *dal},
	}))

	menu, err := s.GetDailyMenu(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []models.MenuItem{*eggs}, menu.Breakfast)
	assert.Equal(t, []models.MenuItem{*dal, *rice}, menu.Lunch)
	assert.Empty(t, menu.Dinner)

	// An unknown dish rolls the whole replacement back.
	err = s.ReplaceDailyMenu(ctx, &models.DailyMenu{
		Date:   day,
		Dinner: []models.MenuItem{*dal, {ID: 9999, Name: "Ghost"}},
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	menu, err = s.GetDailyMenu(ctx, day)
	require.NoError(t, err)
	assert.Len(t, menu.Lunch, 2)
	assert.Empty(t, menu.Dinner)

	err = s.ReplaceDailyMenu(ctx, &models.DailyMenu{
		Date:  day,
		Lunch: []models.MenuItem{*dal, *dal},
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	require.NoError(t, s.ReplaceDailyMenu(ctx, &models.DailyMenu{
		Date:   date(t, "2025-08-04"),
		Dinner: []models.MenuItem{*rice},
	}))

	menus, err := s.ListDailyMenus(ctx, 10)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "2025-08-04", menus[0].Date.Format(models.DateLayout))
	assert.Equal(t, "2025-08-03", menus[1].Date.Format(models.DateLayout))

	menus, err = s.ListDailyMenus(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, menus, 1)
}

func testSettings(t *testing.T, s storage.Store) {
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCurrency, settings.Currency)

	require.NoError(t, s.UpdateSettings(ctx, &models.Settings{Currency: "BDT"}))
	settings, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BDT", settings.Currency)
}

func testLedger(t *testing.T, s storage.Store) {
	ctx := context.Background()
	alice := mustUser(t, s, "alice", "Alice")
	bob := mustUser(t, s, "bob", "Bob")
	carol := mustUser(t, s, "carol", "Carol")

	require.NoError(t, s.AddAttendance(ctx, []models.AttendanceRecord{
		{UserID: alice.ID, Date: date(t, "2025-08-01"), MealType: models.MealLunch},
		{UserID: alice.ID, Date: date(t, "2025-08-31"), MealType: models.MealDinner},
		{UserID: bob.ID, Date: date(t, "2025-08-15"), MealType: models.MealBreakfast},
		// Outside August 2025.
		{UserID: bob.ID, Date: date(t, "2025-07-31"), MealType: models.MealDinner},
		{UserID: bob.ID, Date: date(t, "2024-08-15"), MealType: models.MealDinner},
		{UserID: carol.ID, Date: date(t, "2025-09-01"), MealType: models.MealBreakfast},
	}))
	for _, e := range []*models.Expense{
		{PurchaseDate: date(t, "2025-08-02"), ItemName: "Rice", Price: dec("100.10"), PaidByUserID: bob.ID, Category: models.CategoryFood},
		{PurchaseDate: date(t, "2025-08-20"), ItemName: "Oil", Price: dec("50.05"), PaidByUserID: bob.ID, Category: models.CategoryFood},
		{PurchaseDate: date(t, "2025-08-21"), ItemName: "Gas", Price: dec("30"), PaidByUserID: alice.ID, Category: models.CategoryUtilities},
		{PurchaseDate: date(t, "2025-09-02"), ItemName: "Salt", Price: dec("5"), PaidByUserID: carol.ID, Category: models.CategoryFood},
	} {
		require.NoError(t, s.CreateExpense(ctx, e))
	}
	for _, p := range []*models.Payment{
		{UserID: alice.ID, Amount: dec("60"), Date: date(t, "2025-08-05")},
		{UserID: alice.ID, Amount: dec("0.50"), Date: date(t, "2025-08-06")},
		{UserID: carol.ID, Amount: dec("40"), Date: date(t, "2024-08-05")},
	} {
		require.NoError(t, s.CreatePayment(ctx, p))
	}

	total, err := s.TotalExpensesInPeriod(ctx, "August", "2025")
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("180.15")), "got %s", total)

	meals, err := s.TotalMealsInPeriod(ctx, "August", "2025")
	require.NoError(t, err)
	assert.Equal(t, int64(3), meals)

	// Month names are matched exactly.
	meals, err = s.TotalMealsInPeriod(ctx, "august", "2025")
	require.NoError(t, err)
	assert.Zero(t, meals)

	counts, err := s.PerUserMealCounts(ctx, "August", "2025")
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{alice.ID: 2, bob.ID: 1}, counts)

	payments, err := s.PerUserPayments(ctx, "August", "2025")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[alice.ID].Equal(dec("60.5")))

	shopping, err := s.PerUserShoppingExpenses(ctx, "August", "2025")
	require.NoError(t, err)
	require.Len(t, shopping, 2)
	assert.True(t, shopping[bob.ID].Equal(dec("150.15")))
	assert.True(t, shopping[alice.ID].Equal(dec("30")))

	users, err := s.AllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.UserRef{
		{ID: alice.ID, Name: "Alice"},
		{ID: bob.ID, Name: "Bob"},
		{ID: carol.ID, Name: "Carol"},
	}, users)

	allPayments, allShopping, err := s.AllTimeTotals(ctx)
	require.NoError(t, err)
	assert.True(t, allPayments[carol.ID].Equal(dec("40")))
	assert.True(t, allShopping[carol.ID].Equal(dec("5")))
	assert.True(t, allShopping[bob.ID].Equal(dec("150.15")))

	empty, err := s.TotalExpensesInPeriod(ctx, "March", "2030")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
