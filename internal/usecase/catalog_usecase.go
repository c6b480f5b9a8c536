package usecase

import (
	"context"
	"io"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data for a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Unit        string
	PriceKZT    int64
	Stock       int
	MOQ         int
}

// UpdateProductInput defines the mutable fields of a catalog entry.
type UpdateProductInput struct {
	Name        string
	Description string
	Unit        string
	PriceKZT    int64
	Stock       int
	MOQ         int
	Archived    bool
}

// CatalogUsecase defines the interface for supplier catalog operations.
type CatalogUsecase interface {
	// CreateProduct adds a product to the acting staff user's company catalog.
	CreateProduct(ctx context.Context, actor *entity.User, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product of the actor's company.
	UpdateProduct(ctx context.Context, actor *entity.User, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// ArchiveProduct hides a product from listings without deleting it.
	ArchiveProduct(ctx context.Context, actor *entity.User, productID uuid.UUID) error

	// UploadProductImage stores an image blob and attaches its URL to the product.
	UploadProductImage(ctx context.Context, actor *entity.User, productID uuid.UUID, contentType string, r io.Reader) (*entity.Product, error)

	// ListOwn returns the actor's company catalog, optionally with archived entries.
	ListOwn(ctx context.Context, actor *entity.User, includeArchived bool) ([]*entity.Product, error)

	// ListForConsumer returns a supplier's active products to a consumer with
	// an approved link.
	ListForConsumer(ctx context.Context, actor *entity.User, supplierID uuid.UUID) ([]*entity.Product, error)

	// ListSuppliers returns active supplier companies for browsing.
	ListSuppliers(ctx context.Context) ([]*entity.Supplier, error)
}
