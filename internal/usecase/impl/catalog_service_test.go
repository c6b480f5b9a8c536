package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/cache"
	mockCache "bazaar/internal/mocks/cache"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	linkRepo     *mockRepo.MockLinkRepository
	supplierRepo *mockRepo.MockSupplierRepository
	fileStore    *mockSvc.MockFileStore
	cacheStore   *mockCache.MockStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	cacheStore := mockCache.NewMockStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCatalogService(productRepo, linkRepo, supplierRepo, fileStore, cacheStore, logger)

	return catalogServiceFixtures{
		service:      svc,
		productRepo:  productRepo,
		linkRepo:     linkRepo,
		supplierRepo: supplierRepo,
		fileStore:    fileStore,
		cacheStore:   cacheStore,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)
	fx.cacheStore.EXPECT().Delete(ctx, "catalog:"+supplierID.String()).Return(nil)

	product, err := fx.service.CreateProduct(ctx, admin, &usecase.CreateProductInput{
		Name:     "Wheat flour",
		Unit:     "bag",
		PriceKZT: 2600,
		Stock:    100,
		MOQ:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, supplierID, product.SupplierID)
	assert.Equal(t, "Wheat flour", product.Name)
	assert.False(t, product.Archived)
}

func TestCatalogService_CreateProduct_InvalidInput(t *testing.T) {
	fx := createTestCatalogService(t)

	admin := supplierStaff(entity.RoleAdmin, uuid.New())

	_, err := fx.service.CreateProduct(context.Background(), admin, &usecase.CreateProductInput{
		Name:     "",
		PriceKZT: -1,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_SalesForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	sales := supplierStaff(entity.RoleSales, uuid.New())

	_, err := fx.service.CreateProduct(context.Background(), sales, &usecase.CreateProductInput{Name: "Rice"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_ArchiveProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	product := &entity.Product{ID: uuid.New(), SupplierID: supplierID, Name: "Rice", PriceKZT: 100, MOQ: 1}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, updated *entity.Product) {
			assert.True(t, updated.Archived)
		}).
		Return(nil)
	fx.cacheStore.EXPECT().Delete(ctx, "catalog:"+supplierID.String()).Return(nil)

	err := fx.service.ArchiveProduct(ctx, owner, product.ID)
	require.NoError(t, err)
}

func TestCatalogService_UpdateProduct_OtherCompanyReadsAsNotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := supplierStaff(entity.RoleOwner, uuid.New())
	product := &entity.Product{ID: uuid.New(), SupplierID: uuid.New(), Name: "Rice", PriceKZT: 100, MOQ: 1}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(ctx, owner, product.ID, &usecase.UpdateProductInput{Name: "Rice", PriceKZT: 200, MOQ: 1})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_UploadProductImage_StoresAndLinks(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)
	product := &entity.Product{ID: uuid.New(), SupplierID: supplierID, Name: "Rice", PriceKZT: 100, MOQ: 1}
	key := "products/" + supplierID.String() + "/" + product.ID.String()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.fileStore.EXPECT().
		Save(ctx, key, "image/png", mock.Anything).
		Return("https://cdn.example.com/"+key, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, updated *entity.Product) {
			assert.Equal(t, "https://cdn.example.com/"+key, updated.ImageURL)
		}).
		Return(nil)
	fx.cacheStore.EXPECT().Delete(ctx, "catalog:"+supplierID.String()).Return(nil)

	updated, err := fx.service.UploadProductImage(ctx, admin, product.ID, "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, updated.ImageURL)
}

func TestCatalogService_ListForConsumer_CacheMiss(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), SupplierID: supplierID, Name: "Rice", PriceKZT: 100, MOQ: 1}}

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(approvedLink(supplierID, consumer.ID), nil)
	fx.cacheStore.EXPECT().
		Get(ctx, "catalog:"+supplierID.String()).
		Return(nil, cache.ErrCacheMiss)
	fx.productRepo.EXPECT().ListBySupplier(ctx, supplierID, false).Return(products, nil)
	fx.cacheStore.EXPECT().
		Set(ctx, "catalog:"+supplierID.String(), mock.AnythingOfType("[]uint8"), mock.Anything).
		Return(nil)

	got, err := fx.service.ListForConsumer(ctx, consumer, supplierID)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_ListForConsumer_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), SupplierID: supplierID, Name: "Rice", PriceKZT: 100, MOQ: 1}}
	payload, err := json.Marshal(products)
	require.NoError(t, err)

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(approvedLink(supplierID, consumer.ID), nil)
	fx.cacheStore.EXPECT().
		Get(ctx, "catalog:"+supplierID.String()).
		Return(payload, nil)

	got, err := fx.service.ListForConsumer(ctx, consumer, supplierID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, products[0].ID, got[0].ID)
	assert.Equal(t, products[0].Name, got[0].Name)
}

func TestCatalogService_ListForConsumer_NoApprovedLink(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(nil, repository.ErrLinkNotFound)

	_, err := fx.service.ListForConsumer(ctx, consumer, supplierID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLinkNotApproved.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_ListForConsumer_PendingLink(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()
	link := approvedLink(supplierID, consumer.ID)
	link.Status = entity.LinkPending

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(link, nil)

	_, err := fx.service.ListForConsumer(ctx, consumer, supplierID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLinkNotApproved.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_ListForConsumer_StaffForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	staff := supplierStaff(entity.RoleOwner, uuid.New())

	_, err := fx.service.ListForConsumer(context.Background(), staff, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_ListOwn_IncludesArchived(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	products := []*entity.Product{
		{ID: uuid.New(), SupplierID: supplierID, Name: "Rice"},
		{ID: uuid.New(), SupplierID: supplierID, Name: "Old flour", Archived: true},
	}

	fx.productRepo.EXPECT().ListBySupplier(ctx, supplierID, true).Return(products, nil)

	got, err := fx.service.ListOwn(ctx, owner, true)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListSuppliers(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	suppliers := []*entity.Supplier{{ID: uuid.New(), CompanyName: "Aqbota Trade", Active: true}}

	fx.supplierRepo.EXPECT().List(ctx).Return(suppliers, nil)

	got, err := fx.service.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Equal(t, suppliers, got)
}
