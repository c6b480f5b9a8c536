// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrSupplierNotFound is returned when a supplier company is not found.
var ErrSupplierNotFound = errors.New("supplier not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListBySupplier retrieves all staff users of a supplier company.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

// SupplierRepository defines operations for supplier company persistence.
type SupplierRepository interface {
	// FindByID retrieves a supplier company by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// List retrieves active supplier companies for catalog browsing.
	List(ctx context.Context) ([]*entity.Supplier, error)

	// Create persists a new supplier company.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// Update modifies an existing supplier company.
	Update(ctx context.Context, supplier *entity.Supplier) error
}
