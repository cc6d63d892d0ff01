package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
)

const menuColumns = `id, restaurant_id, dish, price, created_at, updated_at`

func scanMenuItem(row pgx.Row, item *model.MenuItem) error {
	return row.Scan(&item.ID, &item.RestaurantID, &item.Dish, &item.Price, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) Create(ctx context.Context, restaurantID int64, dish string, price int64) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items (restaurant_id, dish, price) VALUES ($1, $2, $3) RETURNING ` + menuColumns
	var item model.MenuItem
	if err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, restaurantID, dish, price), &item); err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `SELECT ` + menuColumns + ` FROM menu_items WHERE id=$1`
	var item model.MenuItem
	if err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, id), &item); err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (r *menuRepository) Update(ctx context.Context, id int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	const query = `UPDATE menu_items
                   SET dish = COALESCE($1, dish), price = COALESCE($2, price), updated_at = NOW()
                   WHERE id=$3
                   RETURNING ` + menuColumns
	var item model.MenuItem
	if err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, update.Dish, update.Price, id), &item); err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	const query = `SELECT ` + menuColumns + ` FROM menu_items WHERE restaurant_id=$1 ORDER BY dish`
	return collectMenuItems(r.storage.pool.Query(ctx, query, restaurantID))
}

func collectMenuItems(rows pgx.Rows, err error) ([]model.MenuItem, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
