package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/messbook/internal/auth"
	"github.com/mmynk/messbook/internal/middleware"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage/sqlite"
	"github.com/mmynk/messbook/pkg/api"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

func TestAccessRules(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "access.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	users := map[models.Role]*models.User{}
	for _, role := range []models.Role{models.RoleAdmin, models.RoleStaff, models.RoleStudent} {
		u := &models.User{Username: string(role), Name: string(role), Role: role}
		require.NoError(t, store.CreateUser(ctx, u))
		users[role] = u
	}

	authenticator := auth.NewAuthenticator(store, auth.NewJWTManager("test-secret", time.Hour))
	opts := connect.WithInterceptors(middleware.RequireAuth(authenticator, AccessRules))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewLedgerServiceHandler(NewLedgerService(store, nil), opts))
	mux.Handle(apiconnect.NewHouseholdServiceHandler(NewHouseholdService(store), opts))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	ledger := apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)
	household := apiconnect.NewHouseholdServiceClient(http.DefaultClient, server.URL)

	bearer := func(role models.Role) string {
		token, err := authenticator.IssueToken(ctx, users[role].ID)
		require.NoError(t, err)
		return "Bearer " + token
	}
	payment := func(header string) error {
		req := connect.NewRequest(&api.RecordPaymentRequest{UserID: users[models.RoleStudent].ID, Amount: d("10"), Date: "2025-08-01"})
		if header != "" {
			req.Header().Set("Authorization", header)
		}
		_, err := ledger.RecordPayment(ctx, req)
		return err
	}

	t.Run("missing token", func(t *testing.T) {
		assertCode(t, payment(""), connect.CodeUnauthenticated)
	})

	t.Run("malformed header", func(t *testing.T) {
		assertCode(t, payment("Token abc"), connect.CodeUnauthenticated)
	})

	t.Run("student cannot record payments", func(t *testing.T) {
		assertCode(t, payment(bearer(models.RoleStudent)), connect.CodePermissionDenied)
	})

	t.Run("staff can record payments", func(t *testing.T) {
		assert.NoError(t, payment(bearer(models.RoleStaff)))
	})

	t.Run("staff cannot change settings", func(t *testing.T) {
		req := connect.NewRequest(&api.UpdateSettingsRequest{Currency: "EUR"})
		req.Header().Set("Authorization", bearer(models.RoleStaff))
		_, err := household.UpdateSettings(ctx, req)
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("student can read and rename self", func(t *testing.T) {
		student := users[models.RoleStudent]

		req := connect.NewRequest(&api.ListUsersRequest{})
		req.Header().Set("Authorization", bearer(models.RoleStudent))
		resp, err := household.ListUsers(ctx, req)
		require.NoError(t, err)
		assert.Len(t, resp.Msg.Users, 3)

		rename := connect.NewRequest(&api.UpdateProfileRequest{UserID: student.ID, Name: "Sam"})
		rename.Header().Set("Authorization", bearer(models.RoleStudent))
		_, err = household.UpdateProfile(ctx, rename)
		require.NoError(t, err)

		other := connect.NewRequest(&api.UpdateProfileRequest{UserID: users[models.RoleStaff].ID, Name: "Nope"})
		other.Header().Set("Authorization", bearer(models.RoleStudent))
		_, err = household.UpdateProfile(ctx, other)
		assertCode(t, err, connect.CodePermissionDenied)
	})
}
