package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/pkg/api"
)

// MenuServiceName is the fully-qualified name of the MenuService service.
const MenuServiceName = "messbook.v1.MenuService"

// Procedure paths.
const (
	MenuServiceCreateMenuItemProcedure  = "/messbook.v1.MenuService/CreateMenuItem"
	MenuServiceListMenuItemsProcedure   = "/messbook.v1.MenuService/ListMenuItems"
	MenuServiceSearchMenuItemsProcedure = "/messbook.v1.MenuService/SearchMenuItems"
	MenuServiceSetDailyMenuProcedure    = "/messbook.v1.MenuService/SetDailyMenu"
	MenuServiceGetDailyMenuProcedure    = "/messbook.v1.MenuService/GetDailyMenu"
	MenuServiceListDailyMenusProcedure  = "/messbook.v1.MenuService/ListDailyMenus"
)

// MenuServiceHandler is implemented by the server.
type MenuServiceHandler interface {
	CreateMenuItem(context.Context, *connect.Request[api.CreateMenuItemRequest]) (*connect.Response[api.CreateMenuItemResponse], error)
	ListMenuItems(context.Context, *connect.Request[api.ListMenuItemsRequest]) (*connect.Response[api.ListMenuItemsResponse], error)
	SearchMenuItems(context.Context, *connect.Request[api.SearchMenuItemsRequest]) (*connect.Response[api.SearchMenuItemsResponse], error)
	SetDailyMenu(context.Context, *connect.Request[api.SetDailyMenuRequest]) (*connect.Response[api.SetDailyMenuResponse], error)
	GetDailyMenu(context.Context, *connect.Request[api.GetDailyMenuRequest]) (*connect.Response[api.GetDailyMenuResponse], error)
	ListDailyMenus(context.Context, *connect.Request[api.ListDailyMenusRequest]) (*connect.Response[api.ListDailyMenusResponse], error)
}

// NewMenuServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMenuServiceHandler(svc MenuServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	r := routes{}
	unary(r, MenuServiceCreateMenuItemProcedure, svc.CreateMenuItem, opts)
	unary(r, MenuServiceListMenuItemsProcedure, svc.ListMenuItems, opts)
	unary(r, MenuServiceSearchMenuItemsProcedure, svc.SearchMenuItems, opts)
	unary(r, MenuServiceSetDailyMenuProcedure, svc.SetDailyMenu, opts)
	unary(r, MenuServiceGetDailyMenuProcedure, svc.GetDailyMenu, opts)
	unary(r, MenuServiceListDailyMenusProcedure, svc.ListDailyMenus, opts)
	return "/" + MenuServiceName + "/", r
}

// MenuServiceClient is a client for the MenuService service.
type MenuServiceClient interface {
	CreateMenuItem(context.Context, *connect.Request[api.CreateMenuItemRequest]) (*connect.Response[api.CreateMenuItemResponse], error)
	ListMenuItems(context.Context, *connect.Request[api.ListMenuItemsRequest]) (*connect.Response[api.ListMenuItemsResponse], error)
	SearchMenuItems(context.Context, *connect.Request[api.SearchMenuItemsRequest]) (*connect.Response[api.SearchMenuItemsResponse], error)
	SetDailyMenu(context.Context, *connect.Request[api.SetDailyMenuRequest]) (*connect.Response[api.SetDailyMenuResponse], error)
	GetDailyMenu(context.Context, *connect.Request[api.GetDailyMenuRequest]) (*connect.Response[api.GetDailyMenuResponse], error)
	ListDailyMenus(context.Context, *connect.Request[api.ListDailyMenusRequest]) (*connect.Response[api.ListDailyMenusResponse], error)
}

type menuServiceClient struct {
	createMenuItem  *connect.Client[api.CreateMenuItemRequest, api.CreateMenuItemResponse]
	listMenuItems   *connect.Client[api.ListMenuItemsRequest, api.ListMenuItemsResponse]
	searchMenuItems *connect.Client[api.SearchMenuItemsRequest, api.SearchMenuItemsResponse]
	setDailyMenu    *connect.Client[api.SetDailyMenuRequest, api.SetDailyMenuResponse]
	getDailyMenu    *connect.Client[api.GetDailyMenuRequest, api.GetDailyMenuResponse]
	listDailyMenus  *connect.Client[api.ListDailyMenusRequest, api.ListDailyMenusResponse]
}

// NewMenuServiceClient constructs a client for the MenuService service. baseURL is
// the server root, e.g. http://localhost:8080.
func NewMenuServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MenuServiceClient {
	return &menuServiceClient{
		createMenuItem:  newClient[api.CreateMenuItemRequest, api.CreateMenuItemResponse](httpClient, baseURL, MenuServiceCreateMenuItemProcedure, opts),
		listMenuItems:   newClient[api.ListMenuItemsRequest, api.ListMenuItemsResponse](httpClient, baseURL, MenuServiceListMenuItemsProcedure, opts),
		searchMenuItems: newClient[api.SearchMenuItemsRequest, api.SearchMenuItemsResponse](httpClient, baseURL, MenuServiceSearchMenuItemsProcedure, opts),
		setDailyMenu:    newClient[api.SetDailyMenuRequest, api.SetDailyMenuResponse](httpClient, baseURL, MenuServiceSetDailyMenuProcedure, opts),
		getDailyMenu:    newClient[api.GetDailyMenuRequest, api.GetDailyMenuResponse](httpClient, baseURL, MenuServiceGetDailyMenuProcedure, opts),
		listDailyMenus:  newClient[api.ListDailyMenusRequest, api.ListDailyMenusResponse](httpClient, baseURL, MenuServiceListDailyMenusProcedure, opts),
	}
}

func (c *menuServiceClient) CreateMenuItem(ctx context.Context, req *connect.Request[api.CreateMenuItemRequest]) (*connect.Response[api.CreateMenuItemResponse], error) {
	return c.createMenuItem.CallUnary(ctx, req)
}

func (c *menuServiceClient) ListMenuItems(ctx context.Context, req *connect.Request[api.ListMenuItemsRequest]) (*connect.Response[api.ListMenuItemsResponse], error) {
	return c.listMenuItems.CallUnary(ctx, req)
}

func (c *menuServiceClient) SearchMenuItems(ctx context.Context, req *connect.Request[api.SearchMenuItemsRequest]) (*connect.Response[api.SearchMenuItemsResponse], error) {
	return c.searchMenuItems.CallUnary(ctx, req)
}

func (c *menuServiceClient) SetDailyMenu(ctx context.Context, req *connect.Request[api.SetDailyMenuRequest]) (*connect.Response[api.SetDailyMenuResponse], error) {
	return c.setDailyMenu.CallUnary(ctx, req)
}

func (c *menuServiceClient) GetDailyMenu(ctx context.Context, req *connect.Request[api.GetDailyMenuRequest]) (*connect.Response[api.GetDailyMenuResponse], error) {
	return c.getDailyMenu.CallUnary(ctx, req)
}

func (c *menuServiceClient) ListDailyMenus(ctx context.Context, req *connect.Request[api.ListDailyMenusRequest]) (*connect.Response[api.ListDailyMenusResponse], error) {
	return c.listDailyMenus.CallUnary(ctx, req)
}
