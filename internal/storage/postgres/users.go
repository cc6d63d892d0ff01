package postgres

import (
	"context"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

const userColumns = `id, login, email, password_hash, balance, created_at`

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, email *string, initialBalance int64) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, email, balance) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	u := model.User{Login: login, PasswordHash: passwordHash, Email: email, Balance: initialBalance}
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, email, initialBalance).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE login=$1`
	return r.get(ctx, query, login)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.get(ctx, query, id)
}

func (r *userRepository) get(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Login, &u.Email, &u.PasswordHash, &u.Balance, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepository) Deposit(ctx context.Context, id int64, amount int64) (int64, error) {
	const query = `UPDATE users SET balance = balance + $1 WHERE id=$2 RETURNING balance`
	var balance int64
	if err := r.storage.pool.QueryRow(ctx, query, amount, id).Scan(&balance); err != nil {
		return 0, mapError(err)
	}
	return balance, nil
}
