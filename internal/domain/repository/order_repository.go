package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines operations for order persistence. Items travel
// with their order; there is no separate item repository.
type OrderRepository interface {
	// Create persists a new order with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListBySupplier retrieves all non-archived orders of a supplier company.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Order, error)

	// ListByConsumer retrieves all non-archived orders of a consumer.
	ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error)

	// Update modifies an existing order and its status fields.
	Update(ctx context.Context, order *entity.Order) error
}
