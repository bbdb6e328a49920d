package api

type CreateMenuItemRequest struct {
	Name string `json:"name"`
}

type CreateMenuItemResponse struct {
	Item MenuItem `json:"item"`
}

type ListMenuItemsRequest struct{}

type ListMenuItemsResponse struct {
	Items []MenuItem `json:"items"`
}

// SearchMenuItemsRequest ranks dishes by edit distance to Query.
type SearchMenuItemsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type SearchMenuItemsResponse struct {
	Items []MenuItem `json:"items"`
}

// SetDailyMenuRequest replaces the whole menu for Date with the given dish ids.
type SetDailyMenuRequest struct {
	Date      string  `json:"date"`
	Breakfast []int64 `json:"breakfast"`
	Lunch     []int64 `json:"lunch"`
	Dinner    []int64 `json:"dinner"`
}

type SetDailyMenuResponse struct {
	Menu DailyMenu `json:"menu"`
}

type GetDailyMenuRequest struct {
	Date string `json:"date"`
}

type GetDailyMenuResponse struct {
	Menu DailyMenu `json:"menu"`
}

type ListDailyMenusRequest struct {
	Limit int `json:"limit,omitempty"`
}

type ListDailyMenusResponse struct {
	Menus []DailyMenu `json:"menus"`
}
