// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterConsumerInput defines the data required to register a consumer
// (restaurant) account.
type RegisterConsumerInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// RegisterSupplierInput defines the data required to register a supplier
// company together with its owner account.
type RegisterSupplierInput struct {
	OwnerName   string
	Email       string
	Phone       string
	Password    string
	CompanyName string
	BIN         string
	Address     string
	City        string
	Description string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the refresh token for session rotation.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User     *entity.User
	Supplier *entity.Supplier // set for supplier registrations only
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for identity and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterConsumer(ctx context.Context, input *RegisterConsumerInput) (*RegisterOutput, error)
	RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)
	Logout(ctx context.Context, refreshToken string) error
}
