package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/cache"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	linkRepo     repository.LinkRepository
	supplierRepo repository.SupplierRepository
	fileStore    service.FileStore
	cacheStore   cache.Store
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	linkRepo repository.LinkRepository,
	supplierRepo repository.SupplierRepository,
	fileStore service.FileStore,
	cacheStore cache.Store,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		linkRepo:     linkRepo,
		supplierRepo: supplierRepo,
		fileStore:    fileStore,
		cacheStore:   cacheStore,
		logger:       logger,
	}
}

// CreateProduct adds a product to the acting staff user's company catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, actor *entity.User, input *usecase.CreateProductInput) (*entity.Product, error) {
	scope, err := srv.catalogScope(actor)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		SupplierID:  scope.SupplierID,
		Name:        input.Name,
		Description: input.Description,
		Unit:        input.Unit,
		PriceKZT:    input.PriceKZT,
		Stock:       input.Stock,
		MOQ:         input.MOQ,
	}
	if err := product.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.invalidateListing(ctx, scope.SupplierID)
	srv.logger.Info("Product created", "productID", product.ID, "supplierID", scope.SupplierID)

	return product, nil
}

// UpdateProduct modifies a product of the actor's company.
func (srv *catalogService) UpdateProduct(ctx context.Context, actor *entity.User, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	scope, err := srv.catalogScope(actor)
	if err != nil {
		return nil, err
	}

	product, err := srv.ownProduct(ctx, scope, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Unit = input.Unit
	product.PriceKZT = input.PriceKZT
	product.Stock = input.Stock
	product.MOQ = input.MOQ
	product.Archived = input.Archived

	if err := product.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.invalidateListing(ctx, scope.SupplierID)

	return product, nil
}

// ArchiveProduct hides a product from listings without deleting it.
func (srv *catalogService) ArchiveProduct(ctx context.Context, actor *entity.User, productID uuid.UUID) error {
	scope, err := srv.catalogScope(actor)
	if err != nil {
		return err
	}

	product, err := srv.ownProduct(ctx, scope, productID)
	if err != nil {
		return err
	}

	product.Archived = true
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return errors.WithStack(err)
	}

	srv.invalidateListing(ctx, scope.SupplierID)
	srv.logger.Info("Product archived", "productID", product.ID, "supplierID", scope.SupplierID)

	return nil
}

// UploadProductImage stores an image blob and attaches its URL to the product.
func (srv *catalogService) UploadProductImage(ctx context.Context, actor *entity.User, productID uuid.UUID, contentType string, r io.Reader) (*entity.Product, error) {
	scope, err := srv.catalogScope(actor)
	if err != nil {
		return nil, err
	}

	product, err := srv.ownProduct(ctx, scope, productID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s", product.SupplierID, product.ID)
	url, err := srv.fileStore.Save(ctx, key, contentType, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store product image")
	}

	product.ImageURL = url
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.invalidateListing(ctx, scope.SupplierID)

	return product, nil
}

// ListOwn returns the actor's company catalog.
func (srv *catalogService) ListOwn(ctx context.Context, actor *entity.User, includeArchived bool) ([]*entity.Product, error) {
	scope, err := srv.catalogScope(actor)
	if err != nil {
		return nil, err
	}

	return srv.productRepo.ListBySupplier(ctx, scope.SupplierID, includeArchived)
}

// ListForConsumer returns a supplier's active products to a consumer with an
// approved link. Listings are cached per supplier.
func (srv *catalogService) ListForConsumer(ctx context.Context, actor *entity.User, supplierID uuid.UUID) ([]*entity.Product, error) {
	if actor.Role != entity.RoleConsumer {
		return nil, domainerrors.ErrForbidden.WrapMessage("catalog browsing is consumer-side")
	}

	link, err := srv.linkRepo.FindBySupplierAndConsumer(ctx, supplierID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, domainerrors.ErrLinkNotApproved.WrapMessage("catalog access denied")
		}

		return nil, errors.Wrap(err, "failed to find link")
	}
	if link.Status != entity.LinkApproved {
		return nil, domainerrors.ErrLinkNotApproved.WrapMessage("catalog access denied")
	}

	cacheKey := listingCacheKey(supplierID)
	if cached, err := srv.cacheStore.Get(ctx, cacheKey); err == nil {
		var products []*entity.Product
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
		// A corrupt entry falls through to the database.
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		srv.logger.Warn("Catalog cache read failed", "error", err, "supplierID", supplierID)
	}

	products, err := srv.productRepo.ListBySupplier(ctx, supplierID, false)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if payload, err := json.Marshal(products); err == nil {
		if err := srv.cacheStore.Set(ctx, cacheKey, payload, 0); err != nil {
			srv.logger.Warn("Catalog cache write failed", "error", err, "supplierID", supplierID)
		}
	}

	return products, nil
}

// ListSuppliers returns active supplier companies for browsing.
func (srv *catalogService) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	return srv.supplierRepo.List(ctx)
}

// catalogScope resolves the actor's company and checks canManageCatalog.
func (srv *catalogService) catalogScope(actor *entity.User) (entity.Scope, error) {
	if !actor.Permissions().CanManageCatalog {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("catalog changes require canManageCatalog")
	}

	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("catalog changes require a supplier company")
	}

	return scope, nil
}

// ownProduct loads a product and verifies it belongs to the actor's company.
func (srv *catalogService) ownProduct(ctx context.Context, scope entity.Scope, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("catalog operation failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.SupplierID != scope.SupplierID {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("catalog operation failed")
	}

	return product, nil
}

func (srv *catalogService) invalidateListing(ctx context.Context, supplierID uuid.UUID) {
	if err := srv.cacheStore.Delete(ctx, listingCacheKey(supplierID)); err != nil {
		srv.logger.Warn("Catalog cache invalidation failed", "error", err, "supplierID", supplierID)
	}
}

func listingCacheKey(supplierID uuid.UUID) string {
	return "catalog:" + supplierID.String()
}
