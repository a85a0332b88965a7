// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// IdentityUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// The cart subsystem consumes it only to scope ownership; credentials never
// cross this boundary in plaintext-comparable form.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
