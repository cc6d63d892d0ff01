package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
)

const restaurantColumns = `id, owner_id, name, opening_hours, balance, created_at, updated_at`

func scanRestaurant(row pgx.Row, r *model.Restaurant) error {
	return row.Scan(&r.ID, &r.OwnerID, &r.Name, &r.OpeningHours, &r.Balance, &r.CreatedAt, &r.UpdatedAt)
}

func (r *restaurantRepository) Create(ctx context.Context, ownerID int64, name, openingHours string) (*model.Restaurant, error) {
	const query = `INSERT INTO restaurants (owner_id, name, opening_hours) VALUES ($1, $2, $3) RETURNING ` + restaurantColumns
	var restaurant model.Restaurant
	if err := scanRestaurant(r.storage.pool.QueryRow(ctx, query, ownerID, name, openingHours), &restaurant); err != nil {
		return nil, mapError(err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id=$1`
	var restaurant model.Restaurant
	if err := scanRestaurant(r.storage.pool.QueryRow(ctx, query, id), &restaurant); err != nil {
		return nil, mapError(err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) Update(ctx context.Context, id int64, update model.RestaurantUpdate) (*model.Restaurant, error) {
	const query = `UPDATE restaurants
                   SET name = COALESCE($1, name), opening_hours = COALESCE($2, opening_hours), updated_at = NOW()
                   WHERE id=$3
                   RETURNING ` + restaurantColumns
	var restaurant model.Restaurant
	if err := scanRestaurant(r.storage.pool.QueryRow(ctx, query, update.Name, update.OpeningHours, id), &restaurant); err != nil {
		return nil, mapError(err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM restaurants WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *restaurantRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE owner_id=$1 ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Restaurant
	for rows.Next() {
		var restaurant model.Restaurant
		if err := scanRestaurant(rows, &restaurant); err != nil {
			return nil, err
		}
		result = append(result, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchCandidates loads every restaurant with its dish names and cheapest price.
func (r *restaurantRepository) SearchCandidates(ctx context.Context) ([]model.SearchCandidate, error) {
	const query = `SELECT r.id, r.owner_id, r.name, r.opening_hours, r.balance, r.created_at, r.updated_at,
                          COALESCE(array_agg(m.dish ORDER BY m.dish) FILTER (WHERE m.id IS NOT NULL), '{}') AS dishes,
                          COALESCE(MIN(m.price), 0) AS min_price
                   FROM restaurants r
                   LEFT JOIN menu_items m ON m.restaurant_id = r.id
                   GROUP BY r.id
                   ORDER BY r.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SearchCandidate
	for rows.Next() {
		var c model.SearchCandidate
		res := &c.Restaurant
		if err := rows.Scan(&res.ID, &res.OwnerID, &res.Name, &res.OpeningHours, &res.Balance, &res.CreatedAt, &res.UpdatedAt, &c.Dishes, &c.MinPrice); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
