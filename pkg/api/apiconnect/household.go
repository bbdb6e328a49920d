package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/pkg/api"
)

// HouseholdServiceName is the fully-qualified name of the HouseholdService service.
const HouseholdServiceName = "messbook.v1.HouseholdService"

// Procedure paths.
const (
	HouseholdServiceCreateUserProcedure     = "/messbook.v1.HouseholdService/CreateUser"
	HouseholdServiceGetUserProcedure        = "/messbook.v1.HouseholdService/GetUser"
	HouseholdServiceListUsersProcedure      = "/messbook.v1.HouseholdService/ListUsers"
	HouseholdServiceUpdateProfileProcedure  = "/messbook.v1.HouseholdService/UpdateProfile"
	HouseholdServiceGetSettingsProcedure    = "/messbook.v1.HouseholdService/GetSettings"
	HouseholdServiceUpdateSettingsProcedure = "/messbook.v1.HouseholdService/UpdateSettings"
)

// HouseholdServiceHandler is implemented by the server.
type HouseholdServiceHandler interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	ListUsers(context.Context, *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

// NewHouseholdServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewHouseholdServiceHandler(svc HouseholdServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	r := routes{}
	unary(r, HouseholdServiceCreateUserProcedure, svc.CreateUser, opts)
	unary(r, HouseholdServiceGetUserProcedure, svc.GetUser, opts)
	unary(r, HouseholdServiceListUsersProcedure, svc.ListUsers, opts)
	unary(r, HouseholdServiceUpdateProfileProcedure, svc.UpdateProfile, opts)
	unary(r, HouseholdServiceGetSettingsProcedure, svc.GetSettings, opts)
	unary(r, HouseholdServiceUpdateSettingsProcedure, svc.UpdateSettings, opts)
	return "/" + HouseholdServiceName + "/", r
}

// HouseholdServiceClient is a client for the HouseholdService service.
type HouseholdServiceClient interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	ListUsers(context.Context, *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

type householdServiceClient struct {
	createUser     *connect.Client[api.CreateUserRequest, api.CreateUserResponse]
	getUser        *connect.Client[api.GetUserRequest, api.GetUserResponse]
	listUsers      *connect.Client[api.ListUsersRequest, api.ListUsersResponse]
	updateProfile  *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
	getSettings    *connect.Client[api.GetSettingsRequest, api.GetSettingsResponse]
	updateSettings *connect.Client[api.UpdateSettingsRequest, api.UpdateSettingsResponse]
}

// NewHouseholdServiceClient constructs a client for the HouseholdService service. baseURL is
// the server root, e.g. http://localhost:8080.
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HouseholdServiceClient {
	return &householdServiceClient{
		createUser:     newClient[api.CreateUserRequest, api.CreateUserResponse](httpClient, baseURL, HouseholdServiceCreateUserProcedure, opts),
		getUser:        newClient[api.GetUserRequest, api.GetUserResponse](httpClient, baseURL, HouseholdServiceGetUserProcedure, opts),
		listUsers:      newClient[api.ListUsersRequest, api.ListUsersResponse](httpClient, baseURL, HouseholdServiceListUsersProcedure, opts),
		updateProfile:  newClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL, HouseholdServiceUpdateProfileProcedure, opts),
		getSettings:    newClient[api.GetSettingsRequest, api.GetSettingsResponse](httpClient, baseURL, HouseholdServiceGetSettingsProcedure, opts),
		updateSettings: newClient[api.UpdateSettingsRequest, api.UpdateSettingsResponse](httpClient, baseURL, HouseholdServiceUpdateSettingsProcedure, opts),
	}
}

func (c *householdServiceClient) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

func (c *householdServiceClient) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	return c.getUser.CallUnary(ctx, req)
}

func (c *householdServiceClient) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *householdServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

func (c *householdServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}

func (c *householdServiceClient) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	return c.updateSettings.CallUnary(ctx, req)
}
