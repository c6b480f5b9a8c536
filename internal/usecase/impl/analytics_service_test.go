package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	linkRepo      *mockRepo.MockLinkRepository
	orderRepo     *mockRepo.MockOrderRepository
	complaintRepo *mockRepo.MockComplaintRepository
	incidentRepo  *mockRepo.MockIncidentRepository
	productRepo   *mockRepo.MockProductRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	complaintRepo := mockRepo.NewMockComplaintRepository(t)
	incidentRepo := mockRepo.NewMockIncidentRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAnalyticsService(linkRepo, orderRepo, complaintRepo, incidentRepo, productRepo, logger)

	return analyticsServiceFixtures{
		service:       svc,
		linkRepo:      linkRepo,
		orderRepo:     orderRepo,
		complaintRepo: complaintRepo,
		incidentRepo:  incidentRepo,
		productRepo:   productRepo,
	}
}

func TestAnalyticsService_Summary(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)

	fx.linkRepo.EXPECT().ListBySupplier(ctx, supplierID).Return([]*entity.Link{
		{Status: entity.LinkApproved},
		{Status: entity.LinkApproved},
		{Status: entity.LinkPending},
		{Status: entity.LinkBlocked},
	}, nil)
	flourID := uuid.New()
	sugarID := uuid.New()
	fx.orderRepo.EXPECT().ListBySupplier(ctx, supplierID).Return([]*entity.Order{
		{Status: entity.OrderPending},
		{Status: entity.OrderAccepted},
		{Status: entity.OrderCompleted, TotalKZT: 52000, Items: []entity.OrderItem{
			{ProductID: flourID, ProductName: "Flour", Quantity: 10, TotalKZT: 26000},
			{ProductID: sugarID, ProductName: "Sugar", Quantity: 5, TotalKZT: 26000},
		}},
		{Status: entity.OrderCompleted, TotalKZT: 13000, Items: []entity.OrderItem{
			{ProductID: sugarID, ProductName: "Sugar", Quantity: 2, TotalKZT: 13000},
		}},
		{Status: entity.OrderCancelled, TotalKZT: 9000, Items: []entity.OrderItem{
			{ProductID: flourID, ProductName: "Flour", Quantity: 3, TotalKZT: 9000},
		}},
	}, nil)
	fx.complaintRepo.EXPECT().ListBySupplier(ctx, supplierID).Return([]*entity.Complaint{
		{Status: entity.ComplaintOpen},
		{Status: entity.ComplaintEscalated},
		{Status: entity.ComplaintClosed},
	}, nil)
	fx.incidentRepo.EXPECT().ListBySupplier(ctx, supplierID).Return([]*entity.Incident{
		{Status: entity.IncidentOpen},
		{Status: entity.IncidentInProgress},
		{Status: entity.IncidentResolved},
	}, nil)
	fx.productRepo.EXPECT().ListBySupplier(ctx, supplierID, true).Return([]*entity.Product{
		{Archived: false},
		{Archived: false},
		{Archived: true},
	}, nil)

	summary, err := fx.service.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ActiveLinks)
	assert.Equal(t, 1, summary.PendingLinks)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.Equal(t, 1, summary.AcceptedOrders)
	assert.Equal(t, 2, summary.CompletedOrders)
	assert.Equal(t, int64(65000), summary.RevenueKZT)
	assert.Equal(t, 4, summary.OrderCount)
	assert.Equal(t, int64(65000), summary.GMVKZT)
	assert.InDelta(t, 16250.0, summary.AvgOrderValueKZT, 0.001)
	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, usecase.ProductSales{
		ProductID:   sugarID,
		ProductName: "Sugar",
		TotalSold:   7,
		RevenueKZT:  39000,
	}, summary.TopProducts[0])
	assert.Equal(t, usecase.ProductSales{
		ProductID:   flourID,
		ProductName: "Flour",
		TotalSold:   10,
		RevenueKZT:  26000,
	}, summary.TopProducts[1])
	assert.Equal(t, 2, summary.OpenComplaints)
	assert.Equal(t, 2, summary.OpenIncidents)
	assert.Equal(t, 2, summary.ActiveProducts)
	assert.Equal(t, 1, summary.ArchivedProducts)
}

func TestAnalyticsService_Summary_SalesForbidden(t *testing.T) {
	fx := createTestAnalyticsService(t)

	sales := supplierStaff(entity.RoleSales, uuid.New())

	_, err := fx.service.Summary(context.Background(), sales)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestAnalyticsService_Summary_ConsumerForbidden(t *testing.T) {
	fx := createTestAnalyticsService(t)

	_, err := fx.service.Summary(context.Background(), consumerUser())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}
