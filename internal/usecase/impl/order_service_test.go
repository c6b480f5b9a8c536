package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	linkRepo  *mockRepo.MockLinkRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOrderService(txManager, orderRepo, linkRepo, publisher, nil, logger)

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
		linkRepo:  linkRepo,
		publisher: publisher,
	}
}

func approvedLink(supplierID, consumerID uuid.UUID) *entity.Link {
	return &entity.Link{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: consumerID,
		Status:     entity.LinkApproved,
	}
}

func TestOrderService_Create_SnapshotsPricesAndTotals(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()

	flour := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Wheat flour",
		Unit:       "bag",
		PriceKZT:   2600,
		Stock:      100,
		MOQ:        10,
	}
	sugar := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Sugar",
		Unit:       "bag",
		PriceKZT:   5200,
		Stock:      50,
		MOQ:        5,
	}

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(approvedLink(supplierID, consumer.ID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockProductRepo.EXPECT().FindByID(ctx, flour.ID).Return(flour, nil)
			mockProductRepo.EXPECT().FindByID(ctx, sugar.ID).Return(sugar, nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).
		Run(func(ctx context.Context, event *service.MarketEvent) {
			assert.Equal(t, constants.EventOrderCreated, event.Type)
		}).
		Return(nil)

	order, err := fx.service.Create(ctx, consumer, &usecase.CreateOrderInput{
		SupplierID: supplierID,
		Items: []usecase.OrderItemInput{
			{ProductID: flour.ID, Quantity: 10},
			{ProductID: sugar.ID, Quantity: 5},
		},
		Notes: "deliver before friday",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(26000), order.Items[0].TotalKZT)
	assert.Equal(t, int64(26000), order.Items[1].TotalKZT)
	assert.Equal(t, int64(52000), order.TotalKZT)
	assert.Equal(t, "Wheat flour", order.Items[0].ProductName)
	assert.Equal(t, "deliver before friday", order.Notes)
}

func TestOrderService_Create_BelowMOQ(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Rice",
		PriceKZT:   3000,
		Stock:      100,
		MOQ:        20,
	}

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(approvedLink(supplierID, consumer.ID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, consumer, &usecase.CreateOrderInput{
		SupplierID: supplierID,
		Items:      []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 5}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_Create_WithoutApprovedLink(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(nil, repository.ErrLinkNotFound)

	_, err := fx.service.Create(ctx, consumer, &usecase.CreateOrderInput{
		SupplierID: supplierID,
		Items:      []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLinkNotApproved.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_Create_BlockedLink(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()
	link := approvedLink(supplierID, consumer.ID)
	link.Status = entity.LinkBlocked

	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(link, nil)

	_, err := fx.service.Create(ctx, consumer, &usecase.CreateOrderInput{
		SupplierID: supplierID,
		Items:      []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLinkNotApproved.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_Create_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Create(context.Background(), consumerUser(), &usecase.CreateOrderInput{
		SupplierID: uuid.New(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_Accept_DecrementsStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Rice",
		PriceKZT:   3000,
		Stock:      100,
		MOQ:        10,
	}
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.OrderPending,
		Items:      []entity.OrderItem{{ProductID: product.ID, Quantity: 30, PriceKZT: 3000, TotalKZT: 90000}},
		TotalKZT:   90000,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			mockProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, updated *entity.Product) {
					assert.Equal(t, 70, updated.Stock)
				}).
				Return(nil)
			mockOrderRepo.EXPECT().Update(ctx, order).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).
		Run(func(ctx context.Context, event *service.MarketEvent) {
			assert.Equal(t, constants.EventOrderAccepted, event.Type)
		}).
		Return(nil)

	accepted, err := fx.service.Accept(ctx, sales, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedBy)
	assert.Equal(t, sales.ID, *accepted.RespondedBy)
	assert.WithinDuration(t, time.Now(), *accepted.RespondedAt, time.Second)
}

func TestOrderService_Accept_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)
	product := &entity.Product{ID: uuid.New(), SupplierID: supplierID, Stock: 5, MOQ: 1, PriceKZT: 100}
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.OrderPending,
		Items:      []entity.OrderItem{{ProductID: product.ID, Quantity: 30}},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Accept(ctx, admin, order.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_Accept_ConsumerForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Accept(context.Background(), consumerUser(), uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_Reject_Pending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.OrderPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).
		Return(nil)

	rejected, err := fx.service.Reject(ctx, sales, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderRejected, rejected.Status)
}

func TestOrderService_Complete_RequiresAccepted(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.OrderPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.Complete(ctx, sales, order.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrIllegalTransition.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_Cancel_ByConsumer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumer := consumerUser()
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		ConsumerID: consumer.ID,
		Status:     entity.OrderAccepted,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).
		Return(nil)

	cancelled, err := fx.service.Cancel(ctx, consumer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
}

func TestOrderService_Get_OtherConsumerReadsAsNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumer := consumerUser()
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		ConsumerID: uuid.New(), // someone else's order
		Status:     entity.OrderPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.Get(ctx, consumer, order.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_List_SupplierScope(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	orders := []*entity.Order{{ID: uuid.New(), SupplierID: supplierID}}

	fx.orderRepo.EXPECT().ListBySupplier(ctx, supplierID).Return(orders, nil)

	got, err := fx.service.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
