package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/internal/menu"
	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
	"github.com/mmynk/messbook/pkg/api"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

var _ apiconnect.MenuServiceHandler = (*MenuService)(nil)

// defaultMenuHistory is how many daily menus ListDailyMenus returns when no
// limit is given.
const defaultMenuHistory = 30

// MenuService implements the Connect MenuService.
type MenuService struct {
	store storage.MenuStore
}

// NewMenuService creates a new MenuService.
func NewMenuService(store storage.MenuStore) *MenuService {
	return &MenuService{store: store}
}

// CreateMenuItem adds a dish to the catalogue.
func (s *MenuService) CreateMenuItem(ctx context.Context, req *connect.Request[api.CreateMenuItemRequest]) (*connect.Response[api.CreateMenuItemResponse], error) {
	slog.Info("CreateMenuItem request received", "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("CreateMenuItem", fmt.Errorf("name is required"))
	}

	item := &models.MenuItem{Name: name}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		return nil, toConnectError("CreateMenuItem", err)
	}

	return connect.NewResponse(&api.CreateMenuItemResponse{Item: api.MenuItem{ID: item.ID, Name: item.Name}}), nil
}

// ListMenuItems returns the catalogue ordered by name.
func (s *MenuService) ListMenuItems(ctx context.Context, req *connect.Request[api.ListMenuItemsRequest]) (*connect.Response[api.ListMenuItemsResponse], error) {
	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return nil, toConnectError("ListMenuItems", err)
	}
	return connect.NewResponse(&api.ListMenuItemsResponse{Items: toAPIMenuItems(items)}), nil
}

// SearchMenuItems finds dishes by approximate name.
func (s *MenuService) SearchMenuItems(ctx context.Context, req *connect.Request[api.SearchMenuItemsRequest]) (*connect.Response[api.SearchMenuItemsResponse], error) {
	slog.Info("SearchMenuItems request received", "query", req.Msg.Query)

	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return nil, toConnectError("SearchMenuItems", err)
	}
	found := menu.Search(items, req.Msg.Query, req.Msg.Limit)

	slog.Info("SearchMenuItems successful", "query", req.Msg.Query, "count", len(found))
	return connect.NewResponse(&api.SearchMenuItemsResponse{Items: toAPIMenuItems(found)}), nil
}

// SetDailyMenu replaces the menu for a date. The old menu stays in place
// if any dish id is unknown.
func (s *MenuService) SetDailyMenu(ctx context.Context, req *connect.Request[api.SetDailyMenuRequest]) (*connect.Response[api.SetDailyMenuResponse], error) {
	slog.Info("SetDailyMenu request received",
		"date", req.Msg.Date,
		"breakfast", len(req.Msg.Breakfast),
		"lunch", len(req.Msg.Lunch),
		"dinner", len(req.Msg.Dinner),
	)

	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, toConnectError("SetDailyMenu", err)
	}

	daily := &models.DailyMenu{Date: date}
	for mt, ids := range map[models.MealType][]int64{
		models.MealBreakfast: req.Msg.Breakfast,
		models.MealLunch:     req.Msg.Lunch,
		models.MealDinner:    req.Msg.Dinner,
	} {
		for _, id := range ids {
			daily.Add(mt, models.MenuItem{ID: id})
		}
	}

	if err := s.store.ReplaceDailyMenu(ctx, daily); err != nil {
		return nil, toConnectError("SetDailyMenu", err)
	}

	saved, err := s.store.GetDailyMenu(ctx, date)
	if errors.Is(err, storage.ErrNotFound) {
		// Every slot was cleared.
		saved = &models.DailyMenu{Date: date}
	} else if err != nil {
		return nil, toConnectError("SetDailyMenu", err)
	}

	slog.Info("Daily menu replaced", "date", req.Msg.Date)
	return connect.NewResponse(&api.SetDailyMenuResponse{Menu: toAPIDailyMenu(saved)}), nil
}

// GetDailyMenu returns the menu for a date.
func (s *MenuService) GetDailyMenu(ctx context.Context, req *connect.Request[api.GetDailyMenuRequest]) (*connect.Response[api.GetDailyMenuResponse], error) {
	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, toConnectError("GetDailyMenu", err)
	}

	daily, err := s.store.GetDailyMenu(ctx, date)
	if err != nil {
		return nil, toConnectError("GetDailyMenu", err)
	}
	return connect.NewResponse(&api.GetDailyMenuResponse{Menu: toAPIDailyMenu(daily)}), nil
}

// ListDailyMenus returns recent menus, newest first.
func (s *MenuService) ListDailyMenus(ctx context.Context, req *connect.Request[api.ListDailyMenusRequest]) (*connect.Response[api.ListDailyMenusResponse], error) {
	limit := req.Msg.Limit
	if limit <= 0 {
		limit = defaultMenuHistory
	}

	menus, err := s.store.ListDailyMenus(ctx, limit)
	if err != nil {
		return nil, toConnectError("ListDailyMenus", err)
	}

	out := make([]api.DailyMenu, len(menus))
	for i, m := range menus {
		out[i] = toAPIDailyMenu(m)
	}
	return connect.NewResponse(&api.ListDailyMenusResponse{Menus: out}), nil
}
