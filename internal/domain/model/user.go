package model

import "time"

// User represents a registered marketplace customer.
type User struct {
	ID           int64
	Login        string
	Email        *string
	PasswordHash string
	Balance      int64
	CreatedAt    time.Time
}
