package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// ClaimBatch locks pending outbox rows and marks them claimed. A claim older than
// a minute is considered abandoned and the row becomes claimable again.
func (r *eventRepository) ClaimBatch(ctx context.Context, limit int) ([]model.PurchaseEvent, error) {
	const selectQuery = `SELECT id, receipt_id, payload, created_at
                         FROM purchase_events
                         WHERE published_at IS NULL
                           AND (claimed_at IS NULL OR claimed_at < NOW() - INTERVAL '1 minute')
                         ORDER BY id
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`
	const claimQuery = `UPDATE purchase_events SET claimed_at=NOW() WHERE id = ANY($1)`

	var events []model.PurchaseEvent
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		for rows.Next() {
			var e model.PurchaseEvent
			if err := rows.Scan(&e.ID, &e.ReceiptID, &e.Payload, &e.CreatedAt); err != nil {
				rows.Close()
				return err
			}
			events = append(events, e)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(events))
		for _, e := range events {
			ids = append(ids, e.ID)
		}
		_, err = tx.Exec(ctx, claimQuery, ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) MarkPublished(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE purchase_events SET published_at=NOW() WHERE id=$1`, id)
	return err
}
