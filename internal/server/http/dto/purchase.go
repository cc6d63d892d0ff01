package dto

import (
	"time"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// PurchaseLineRequest is one requested menu item.
type PurchaseLineRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// PurchaseRequest buys the listed menu items in one transaction.
type PurchaseRequest struct {
	Items []PurchaseLineRequest `json:"items"`
}

// Lines converts the request into domain purchase lines.
func (r PurchaseRequest) Lines() []model.PurchaseLine {
	lines := make([]model.PurchaseLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, model.PurchaseLine{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}
	return lines
}

// ReceiptResponse describes a completed purchase.
type ReceiptResponse struct {
	ID        string             `json:"id"`
	Total     int64              `json:"total"`
	Items     []PurchaseResponse `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewReceiptResponse converts a receipt.
func NewReceiptResponse(r *model.Receipt) ReceiptResponse {
	resp := ReceiptResponse{
		ID:        r.ID.String(),
		Total:     r.Total,
		Items:     make([]PurchaseResponse, 0, len(r.Items)),
		CreatedAt: r.CreatedAt,
	}
	for _, p := range r.Items {
		resp.Items = append(resp.Items, NewPurchaseResponse(p))
	}
	return resp
}
