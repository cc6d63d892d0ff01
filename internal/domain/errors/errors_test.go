package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"insufficient balance", ErrInsufficientBalance},
		{"invalid amount", ErrInvalidAmount},
		{"forbidden", ErrForbidden},
		{"invalid quantity", ErrInvalidQuantity},
		{"invalid opening hours", ErrInvalidOpeningHours},
		{"invalid name", ErrInvalidName},
		{"invalid price", ErrInvalidPrice},
		{"invalid email", ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match sentinel: %v", tc.err)
			}
			if tc.err.Error() != tc.name {
				t.Fatalf("unexpected message %q", tc.err.Error())
			}
		})
	}
}
