package model

import "time"

// Restaurant is owned by exactly one user and sells menu items.
type Restaurant struct {
	ID           int64
	OwnerID      int64
	Name         string
	OpeningHours string
	Balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestaurantUpdate carries optional restaurant changes.
type RestaurantUpdate struct {
	Name         *string
	OpeningHours *string
}

// MenuItem is a dish offered by a restaurant.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Dish         string
	Price        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MenuItemUpdate carries optional menu item changes.
type MenuItemUpdate struct {
	Dish  *string
	Price *int64
}

// RestaurantDetails bundles a restaurant with its menu.
type RestaurantDetails struct {
	Restaurant
	Menu []MenuItem
}
