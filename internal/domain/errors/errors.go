package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidOpeningHours = errors.New("invalid opening hours")
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidEmail        = errors.New("invalid email")
)
