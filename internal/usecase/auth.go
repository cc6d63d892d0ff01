package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/foodmarket/internal/config"
	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
	pkgAuth "github.com/polkiloo/foodmarket/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users          repository.UserRepository
	hasher         pkgAuth.PasswordHasher
	tokens         pkgAuth.Strategy
	validate       *validator.Validate
	initialBalance int64
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, cfg *config.Config) *AuthUseCase {
	return &AuthUseCase{
		users:          users,
		hasher:         hasher,
		tokens:         strategy,
		validate:       validator.New(),
		initialBalance: cfg.InitialBalance,
	}
}

// Register creates a new user and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string, email *string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, "", domainErrors.ErrInvalidName
	}
	if password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	email, err := u.normalizeEmail(email)
	if err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, login, hash, email, u.initialBalance)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

func (u *AuthUseCase) normalizeEmail(email *string) (*string, error) {
	if email == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil, nil
	}
	if err := u.validate.Var(trimmed, "email"); err != nil {
		return nil, domainErrors.ErrInvalidEmail
	}
	return &trimmed, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// Deposit tops up the user's balance and returns the new balance.
func (u *AuthUseCase) Deposit(ctx context.Context, userID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domainErrors.ErrInvalidAmount
	}
	return u.users.Deposit(ctx, userID, amount)
}
