package model

import (
	"encoding/json"
	"time"
)

// PurchaseEventItem aggregates the units of one menu item within a receipt.
type PurchaseEventItem struct {
	RestaurantID int64  `json:"restaurant_id"`
	MenuItemID   int64  `json:"menu_item_id"`
	Dish         string `json:"dish"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity"`
}

// PurchaseEventPayload is the message body announcing a completed purchase.
type PurchaseEventPayload struct {
	ReceiptID   string              `json:"receipt_id"`
	UserID      int64               `json:"user_id"`
	Total       int64               `json:"total"`
	Items       []PurchaseEventItem `json:"items"`
	PurchasedAt time.Time           `json:"purchased_at"`
}

// NewPurchaseEventPayload encodes a receipt as an event payload.
func NewPurchaseEventPayload(receipt *Receipt) ([]byte, error) {
	payload := PurchaseEventPayload{
		ReceiptID:   receipt.ID.String(),
		UserID:      receipt.UserID,
		Total:       receipt.Total,
		PurchasedAt: receipt.CreatedAt,
	}
	index := make(map[int64]int)
	for _, unit := range receipt.Items {
		if i, ok := index[unit.MenuItemID]; ok {
			payload.Items[i].Quantity++
			continue
		}
		index[unit.MenuItemID] = len(payload.Items)
		payload.Items = append(payload.Items, PurchaseEventItem{
			RestaurantID: unit.RestaurantID,
			MenuItemID:   unit.MenuItemID,
			Dish:         unit.Dish,
			Price:        unit.Price,
			Quantity:     1,
		})
	}
	return json.Marshal(payload)
}
