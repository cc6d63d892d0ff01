package dto

import (
	"time"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID      int64   `json:"id"`
	Login   string  `json:"login"`
	Email   *string `json:"email,omitempty"`
	Balance int64   `json:"balance"`
}

// NewUserResponse converts a user into its public view.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Login: u.Login, Email: u.Email, Balance: u.Balance}
}

// DepositRequest tops up the caller's balance. Amount is in cents.
type DepositRequest struct {
	Amount int64 `json:"amount"`
}

// BalanceResponse reports a balance in cents.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// PurchaseResponse describes one purchased unit in the history.
type PurchaseResponse struct {
	ID           int64     `json:"id"`
	ReceiptID    string    `json:"receipt_id"`
	RestaurantID int64     `json:"restaurant_id"`
	MenuItemID   int64     `json:"menu_item_id"`
	Dish         string    `json:"dish"`
	Price        int64     `json:"price"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

// NewPurchaseResponse converts a purchase record.
func NewPurchaseResponse(p model.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:           p.ID,
		ReceiptID:    p.ReceiptID.String(),
		RestaurantID: p.RestaurantID,
		MenuItemID:   p.MenuItemID,
		Dish:         p.Dish,
		Price:        p.Price,
		PurchasedAt:  p.PurchasedAt,
	}
}
