package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
)

const (
	// MaxPurchaseLines bounds the number of lines in a single purchase request.
	MaxPurchaseLines = 50
	// MaxUnitsPerLine bounds the quantity of a single line.
	MaxUnitsPerLine = 100
)

// PurchaseLine is a requested menu item with its quantity.
type PurchaseLine struct {
	MenuItemID int64
	Quantity   int
}

// Purchase is a single purchased unit. Dish and Price are snapshots taken at purchase time.
type Purchase struct {
	ID           int64
	ReceiptID    uuid.UUID
	UserID       int64
	RestaurantID int64
	MenuItemID   int64
	Dish         string
	Price        int64
	PurchasedAt  time.Time
}

// Receipt groups the units bought by one purchase request.
type Receipt struct {
	ID        uuid.UUID
	UserID    int64
	Total     int64
	Items     []Purchase
	CreatedAt time.Time
}

// ValidateLines checks request shape before any storage access.
func ValidateLines(lines []PurchaseLine) error {
	if len(lines) == 0 || len(lines) > MaxPurchaseLines {
		return domainErrors.ErrInvalidQuantity
	}
	for _, line := range lines {
		if line.MenuItemID <= 0 {
			return fmt.Errorf("menu item %d: %w", line.MenuItemID, domainErrors.ErrNotFound)
		}
		if line.Quantity < 1 || line.Quantity > MaxUnitsPerLine {
			return domainErrors.ErrInvalidQuantity
		}
	}
	return nil
}

// MenuItemIDs returns distinct menu item identifiers in request order.
func MenuItemIDs(lines []PurchaseLine) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}
	return ids
}

// Settle prices the request against the catalogue and the buyer balance.
// It returns the total and one Purchase per unit in line order.
func Settle(lines []PurchaseLine, catalogue map[int64]MenuItem, balance int64) (int64, []Purchase, error) {
	if err := ValidateLines(lines); err != nil {
		return 0, nil, err
	}

	var (
		total int64
		count int
	)
	for _, line := range lines {
		item, ok := catalogue[line.MenuItemID]
		if !ok {
			return 0, nil, fmt.Errorf("menu item %d: %w", line.MenuItemID, domainErrors.ErrNotFound)
		}
		qty := int64(line.Quantity)
		if item.Price <= 0 || item.Price > (math.MaxInt64-total)/qty {
			return 0, nil, domainErrors.ErrInvalidAmount
		}
		total += item.Price * qty
		count += line.Quantity
	}

	if balance < total {
		return 0, nil, domainErrors.ErrInsufficientBalance
	}

	units := make([]Purchase, 0, count)
	for _, line := range lines {
		item := catalogue[line.MenuItemID]
		for i := 0; i < line.Quantity; i++ {
			units = append(units, Purchase{
				RestaurantID: item.RestaurantID,
				MenuItemID:   item.ID,
				Dish:         item.Dish,
				Price:        item.Price,
			})
		}
	}
	return total, units, nil
}

// PurchaseEvent is an outbox row announcing a completed purchase.
type PurchaseEvent struct {
	ID          int64
	ReceiptID   uuid.UUID
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
