package dto

import "github.com/polkiloo/foodmarket/internal/domain/model"

// MenuItemRequest adds a dish to a menu. Price is in cents.
type MenuItemRequest struct {
	Dish  string `json:"dish" binding:"required"`
	Price int64  `json:"price"`
}

// MenuItemUpdateRequest changes any subset of menu item fields.
type MenuItemUpdateRequest struct {
	Dish  *string `json:"dish"`
	Price *int64  `json:"price"`
}

// MenuItemResponse is the public view of a menu item.
type MenuItemResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	Dish         string `json:"dish"`
	Price        int64  `json:"price"`
}

// NewMenuItemResponse converts a menu item.
func NewMenuItemResponse(item model.MenuItem) MenuItemResponse {
	return MenuItemResponse{ID: item.ID, RestaurantID: item.RestaurantID, Dish: item.Dish, Price: item.Price}
}

// NewMenu converts a menu, never returning nil.
func NewMenu(items []model.MenuItem) []MenuItemResponse {
	resp := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, NewMenuItemResponse(item))
	}
	return resp
}
