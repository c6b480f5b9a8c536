package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data for a new order.
type CreateOrderInput struct {
	SupplierID uuid.UUID
	Items      []OrderItemInput
	Notes      string
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// Create places an order against a supplier the consumer has an approved
	// link with. Prices are snapshotted from the catalog.
	Create(ctx context.Context, actor *entity.User, input *CreateOrderInput) (*entity.Order, error)

	// Get returns a single order if it is visible to the actor.
	Get(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// Accept moves a pending order to accepted and decrements stock.
	Accept(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// Reject moves a pending order to rejected.
	Reject(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// Complete moves an accepted order to completed.
	Complete(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// Cancel moves an accepted order to cancelled.
	Cancel(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// List returns the orders visible to the actor.
	List(ctx context.Context, actor *entity.User) ([]*entity.Order, error)
}
