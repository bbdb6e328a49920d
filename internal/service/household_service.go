package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/internal/middleware"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
	"github.com/mmynk/messbook/pkg/api"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

var _ apiconnect.HouseholdServiceHandler = (*HouseholdService)(nil)

// HouseholdService implements the Connect HouseholdService: members and
// household settings.
type HouseholdService struct {
	store storage.Store
}

// NewHouseholdService creates a new HouseholdService.
func NewHouseholdService(store storage.Store) *HouseholdService {
	return &HouseholdService{store: store}
}

// CreateUser adds a household member. Unknown roles default to Student.
func (s *HouseholdService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	slog.Info("CreateUser request received", "username", req.Msg.Username, "role", req.Msg.Role)

	username := strings.TrimSpace(req.Msg.Username)
	name := strings.TrimSpace(req.Msg.Name)
	if username == "" || name == "" {
		return nil, invalidArgument("CreateUser", fmt.Errorf("username and name are required"))
	}

	user := &models.User{
		Username: username,
		Name:     name,
		Role:     models.ParseRole(req.Msg.Role),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, toConnectError("CreateUser", err)
	}

	slog.Info("User created", "user_id", user.ID, "role", user.Role)
	return connect.NewResponse(&api.CreateUserResponse{User: toAPIUser(user)}), nil
}

// GetUser retrieves a member by ID.
func (s *HouseholdService) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	slog.Info("GetUser request received", "user_id", req.Msg.UserID)

	user, err := s.store.GetUser(ctx, req.Msg.UserID)
	if err != nil {
		return nil, toConnectError("GetUser", err)
	}

	return connect.NewResponse(&api.GetUserResponse{User: toAPIUser(user)}), nil
}

// ListUsers returns every member ordered by ID.
func (s *HouseholdService) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	slog.Info("ListUsers request received")

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, toConnectError("ListUsers", err)
	}

	out := make([]api.User, len(users))
	for i, u := range users {
		out[i] = toAPIUser(u)
	}

	slog.Info("ListUsers successful", "count", len(out))
	return connect.NewResponse(&api.ListUsersResponse{Users: out}), nil
}

// UpdateProfile changes a member's display name. Members may only rename
// themselves; admins may rename anyone.
func (s *HouseholdService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	slog.Info("UpdateProfile request received", "user_id", req.Msg.UserID)

	if caller, ok := middleware.GetIdentity(ctx); ok && caller.Role != models.RoleAdmin && caller.UserID != req.Msg.UserID {
		slog.Warn("UpdateProfile denied", "caller", caller.UserID, "user_id", req.Msg.UserID)
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you can only update your own profile"))
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("UpdateProfile", fmt.Errorf("name is required"))
	}

	if err := s.store.UpdateUserName(ctx, req.Msg.UserID, name); err != nil {
		return nil, toConnectError("UpdateProfile", err)
	}
	user, err := s.store.GetUser(ctx, req.Msg.UserID)
	if err != nil {
		slog.Error("Failed to fetch updated user", "error", err)
		return nil, toConnectError("UpdateProfile", err)
	}

	slog.Info("Profile updated", "user_id", user.ID)
	return connect.NewResponse(&api.UpdateProfileResponse{User: toAPIUser(user)}), nil
}

// GetSettings returns the household settings.
func (s *HouseholdService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, toConnectError("GetSettings", err)
	}
	return connect.NewResponse(&api.GetSettingsResponse{Settings: api.Settings{Currency: settings.Currency}}), nil
}

// UpdateSettings changes the display currency. Currencies are three letter
// codes and are stored upper-case.
func (s *HouseholdService) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	slog.Info("UpdateSettings request received", "currency", req.Msg.Currency)

	currency := strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	if !isCurrencyCode(currency) {
		return nil, invalidArgument("UpdateSettings", fmt.Errorf("currency %q must be a three letter code", req.Msg.Currency))
	}

	settings := &models.Settings{Currency: currency}
	if err := s.store.UpdateSettings(ctx, settings); err != nil {
		return nil, toConnectError("UpdateSettings", err)
	}

	slog.Info("Settings updated", "currency", currency)
	return connect.NewResponse(&api.UpdateSettingsResponse{Settings: api.Settings{Currency: currency}}), nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
