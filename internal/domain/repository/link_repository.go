package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLinkNotFound is returned when a partnership link is not found. Missing
// records are always reported; transitions never no-op silently.
var ErrLinkNotFound = errors.New("link not found")

// ErrDuplicateLink is returned when a consumer already has a link with the
// supplier.
var ErrDuplicateLink = errors.New("link already exists for supplier and consumer")

// LinkRepository defines operations for partnership link persistence.
// Default listings exclude archived links.
type LinkRepository interface {
	// Create persists a new link request.
	Create(ctx context.Context, link *entity.Link) error

	// FindByID retrieves a link by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// FindBySupplierAndConsumer retrieves the link between a supplier company
	// and a consumer, archived or not.
	FindBySupplierAndConsumer(ctx context.Context, supplierID, consumerID uuid.UUID) (*entity.Link, error)

	// ListBySupplier retrieves all non-archived links of a supplier company.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Link, error)

	// ListByConsumer retrieves all non-archived links of a consumer.
	ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Link, error)

	// Update modifies an existing link.
	Update(ctx context.Context, link *entity.Link) error
}
