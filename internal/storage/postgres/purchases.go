package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
)

const purchaseColumns = `id, receipt_id, user_id, COALESCE(restaurant_id, 0), COALESCE(menu_item_id, 0), dish, price, purchased_at`

func scanPurchase(row pgx.Row, p *model.Purchase) error {
	return row.Scan(&p.ID, &p.ReceiptID, &p.UserID, &p.RestaurantID, &p.MenuItemID, &p.Dish, &p.Price, &p.PurchasedAt)
}

// Purchase settles the request inside one transaction: the buyer row is locked,
// every unit is recorded and credited to its restaurant, then the buyer is debited once.
func (r *purchaseRepository) Purchase(ctx context.Context, userID int64, receiptID uuid.UUID, lines []model.PurchaseLine) (*model.Receipt, error) {
	var receipt *model.Receipt
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var balance int64
		if err := tx.QueryRow(ctx, `SELECT balance FROM users WHERE id=$1 FOR UPDATE`, userID).Scan(&balance); err != nil {
			return mapError(err)
		}

		catalogue, err := loadCatalogue(ctx, tx, model.MenuItemIDs(lines))
		if err != nil {
			return err
		}

		total, units, err := model.Settle(lines, catalogue, balance)
		if err != nil {
			return err
		}

		const insertPurchase = `INSERT INTO purchases (receipt_id, user_id, restaurant_id, menu_item_id, dish, price)
                                VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, purchased_at`
		const creditRestaurant = `UPDATE restaurants SET balance = balance + $1 WHERE id=$2`
		for i := range units {
			unit := &units[i]
			unit.ReceiptID = receiptID
			unit.UserID = userID
			if err := tx.QueryRow(ctx, insertPurchase, receiptID, userID, unit.RestaurantID, unit.MenuItemID, unit.Dish, unit.Price).
				Scan(&unit.ID, &unit.PurchasedAt); err != nil {
				return fmt.Errorf("record purchase: %w", err)
			}
			if _, err := tx.Exec(ctx, creditRestaurant, unit.Price, unit.RestaurantID); err != nil {
				return fmt.Errorf("credit restaurant %d: %w", unit.RestaurantID, err)
			}
		}

		if _, err := tx.Exec(ctx, `UPDATE users SET balance = balance - $1 WHERE id=$2`, total, userID); err != nil {
			return fmt.Errorf("debit buyer: %w", err)
		}

		receipt = &model.Receipt{ID: receiptID, UserID: userID, Total: total, Items: units, CreatedAt: units[0].PurchasedAt}
		payload, err := model.NewPurchaseEventPayload(receipt)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO purchase_events (receipt_id, payload) VALUES ($1, $2)`, receiptID, payload); err != nil {
			return fmt.Errorf("record purchase event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func loadCatalogue(ctx context.Context, tx pgx.Tx, ids []int64) (map[int64]model.MenuItem, error) {
	const query = `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ANY($1)`
	items, err := collectMenuItems(tx.Query(ctx, query, ids))
	if err != nil {
		return nil, err
	}
	catalogue := make(map[int64]model.MenuItem, len(items))
	for _, item := range items {
		catalogue[item.ID] = item
	}
	return catalogue, nil
}

func (r *purchaseRepository) ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	const query = `SELECT ` + purchaseColumns + ` FROM purchases WHERE user_id=$1 ORDER BY purchased_at DESC, id DESC`
	return collectPurchases(r.storage.pool.Query(ctx, query, userID))
}

func (r *purchaseRepository) GetReceipt(ctx context.Context, userID int64, receiptID uuid.UUID) (*model.Receipt, error) {
	const query = `SELECT ` + purchaseColumns + ` FROM purchases WHERE receipt_id=$1 AND user_id=$2 ORDER BY id`
	items, err := collectPurchases(r.storage.pool.Query(ctx, query, receiptID, userID))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	receipt := &model.Receipt{ID: receiptID, UserID: userID, Items: items, CreatedAt: items[0].PurchasedAt}
	for _, item := range items {
		receipt.Total += item.Price
	}
	return receipt, nil
}

func collectPurchases(rows pgx.Rows, err error) ([]model.Purchase, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := scanPurchase(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
