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
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// complaintServiceFixtures holds all test dependencies for complaint service tests.
type complaintServiceFixtures struct {
	service       usecase.ComplaintUsecase
	complaintRepo *mockRepo.MockComplaintRepository
	orderRepo     *mockRepo.MockOrderRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestComplaintService(t *testing.T) complaintServiceFixtures {
	complaintRepo := mockRepo.NewMockComplaintRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewComplaintService(complaintRepo, orderRepo, publisher, nil, logger)

	return complaintServiceFixtures{
		service:       svc,
		complaintRepo: complaintRepo,
		orderRepo:     orderRepo,
		publisher:     publisher,
	}
}

func TestComplaintService_File_Success(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: consumer.ID,
		Status:     entity.OrderCompleted,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.complaintRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Complaint")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).
		Run(func(ctx context.Context, event *service.MarketEvent) {
			assert.Equal(t, constants.EventComplaintFiled, event.Type)
		}).
		Return(nil)

	complaint, err := fx.service.File(ctx, consumer, &usecase.FileComplaintInput{
		OrderID:     order.ID,
		Subject:     "damaged bags",
		Description: "three bags arrived torn",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintOpen, complaint.Status)
	assert.Equal(t, supplierID, complaint.SupplierID)
	assert.Equal(t, consumer.ID, complaint.ConsumerID)
}

func TestComplaintService_File_NotOwnOrder(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	consumer := consumerUser()
	order := &entity.Order{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		ConsumerID: uuid.New(), // belongs to another consumer
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.File(ctx, consumer, &usecase.FileComplaintInput{
		OrderID: order.ID,
		Subject: "damaged bags",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestComplaintService_File_StaffForbidden(t *testing.T) {
	fx := createTestComplaintService(t)

	staff := supplierStaff(entity.RoleAdmin, uuid.New())

	_, err := fx.service.File(context.Background(), staff, &usecase.FileComplaintInput{
		OrderID: uuid.New(),
		Subject: "x",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestComplaintService_Start_AssignsActor(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.ComplaintOpen,
	}

	fx.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)
	fx.complaintRepo.EXPECT().Update(ctx, complaint).Return(nil)

	started, err := fx.service.Start(ctx, sales, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintInProgress, started.Status)
	require.NotNil(t, started.AssignedTo)
	assert.Equal(t, sales.ID, *started.AssignedTo)
}

func TestComplaintService_Escalate_BySales(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.ComplaintInProgress,
	}

	fx.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)
	fx.complaintRepo.EXPECT().Update(ctx, complaint).Return(nil)

	escalated, err := fx.service.Escalate(ctx, sales, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintEscalated, escalated.Status)
}

func TestComplaintService_Resolve_EscalatedBySalesForbidden(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.ComplaintEscalated,
	}

	fx.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)

	_, err := fx.service.Resolve(ctx, sales, &usecase.ResolveComplaintInput{
		ComplaintID: complaint.ID,
		Resolution:  "refunded",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestComplaintService_Resolve_EscalatedByAdmin(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.ComplaintEscalated,
	}

	fx.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)
	fx.complaintRepo.EXPECT().Update(ctx, complaint).Return(nil)

	resolved, err := fx.service.Resolve(ctx, admin, &usecase.ResolveComplaintInput{
		ComplaintID: complaint.ID,
		Resolution:  "replacement shipped",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintResolved, resolved.Status)
	assert.Equal(t, "replacement shipped", resolved.Resolution)
}

func TestComplaintService_Close_RequiresResolved(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	admin := supplierStaff(entity.RoleAdmin, supplierID)
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.ComplaintOpen,
	}

	fx.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)

	_, err := fx.service.Close(ctx, admin, complaint.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrIllegalTransition.ErrorCode(), appErr.ErrorCode())
}

func TestComplaintService_Close_Resolved(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		SupplierID: supplierID,
		ConsumerID: uuid.New(),
		Status:     entity.ComplaintResolved,
	}

	fx.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)
	fx.complaintRepo.EXPECT().Update(ctx, complaint).Return(nil)

	closed, err := fx.service.Close(ctx, owner, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)
	assert.WithinDuration(t, time.Now(), *closed.ClosedAt, time.Second)
}

func TestComplaintService_Start_OtherCompanyReadsAsNotFound(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	admin := supplierStaff(entity.RoleAdmin, uuid.New())
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		SupplierID: uuid.New(), // a different company
		ConsumerID: uuid.New(),
		Status:     entity.ComplaintOpen,
	}

	fx.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)

	_, err := fx.service.Start(ctx, admin, complaint.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrComplaintNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestComplaintService_List_ConsumerSeesOwn(t *testing.T) {
	fx := createTestComplaintService(t)

	ctx := context.Background()
	consumer := consumerUser()
	complaints := []*entity.Complaint{{ID: uuid.New(), ConsumerID: consumer.ID}}

	fx.complaintRepo.EXPECT().ListByConsumer(ctx, consumer.ID).Return(complaints, nil)

	got, err := fx.service.List(ctx, consumer)
	require.NoError(t, err)
	assert.Equal(t, complaints, got)
}
