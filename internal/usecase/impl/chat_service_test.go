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

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service    usecase.ChatUsecase
	threadRepo *mockRepo.MockThreadRepository
	linkRepo   *mockRepo.MockLinkRepository
	userRepo   *mockRepo.MockUserRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	threadRepo := mockRepo.NewMockThreadRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewChatService(threadRepo, linkRepo, userRepo, publisher, nil, logger)

	return chatServiceFixtures{
		service:    svc,
		threadRepo: threadRepo,
		linkRepo:   linkRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

func TestChatService_OpenThread_CreatesWhenLinkApproved(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()

	fx.threadRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(nil, repository.ErrThreadNotFound)
	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(approvedLink(supplierID, consumer.ID), nil)
	fx.threadRepo.EXPECT().
		CreateThread(ctx, mock.AnythingOfType("*entity.Thread")).
		Return(nil)

	thread, err := fx.service.OpenThread(ctx, consumer, supplierID, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, supplierID, thread.SupplierID)
	assert.Equal(t, consumer.ID, thread.ConsumerID)
	assert.False(t, thread.Escalated)
}

func TestChatService_OpenThread_ReturnsExisting(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()
	existing := &entity.Thread{ID: uuid.New(), SupplierID: supplierID, ConsumerID: consumer.ID}

	fx.threadRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(existing, nil)
	fx.threadRepo.EXPECT().CountUnread(ctx, existing.ID, consumer.ID).Return(2, nil)
	fx.threadRepo.EXPECT().
		ListMessages(ctx, existing.ID).
		Return([]*entity.Message{{ID: uuid.New(), Content: "hello"}}, nil)

	thread, err := fx.service.OpenThread(ctx, consumer, supplierID, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, thread.ID)
	assert.Equal(t, 2, thread.UnreadCount)
	require.NotNil(t, thread.LastMessage)
	assert.Equal(t, "hello", thread.LastMessage.Content)
}

func TestChatService_OpenThread_NoApprovedLink(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	consumer := consumerUser()
	supplierID := uuid.New()

	fx.threadRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(nil, repository.ErrThreadNotFound)
	fx.linkRepo.EXPECT().
		FindBySupplierAndConsumer(ctx, supplierID, consumer.ID).
		Return(nil, repository.ErrLinkNotFound)

	_, err := fx.service.OpenThread(ctx, consumer, supplierID, consumer.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLinkNotApproved.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_OpenThread_ConsumerCannotOpenForOthers(t *testing.T) {
	fx := createTestChatService(t)

	consumer := consumerUser()

	_, err := fx.service.OpenThread(context.Background(), consumer, uuid.New(), uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_PostMessage_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	thread := &entity.Thread{ID: uuid.New(), SupplierID: supplierID, ConsumerID: uuid.New()}

	fx.threadRepo.EXPECT().FindThreadByID(ctx, thread.ID).Return(thread, nil)
	fx.threadRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*service.MarketEvent")).
		Run(func(ctx context.Context, event *service.MarketEvent) {
			assert.Equal(t, constants.EventMessagePosted, event.Type)
			assert.Equal(t, thread.ID.String(), event.EntityID)
		}).
		Return(nil)

	message, err := fx.service.PostMessage(ctx, sales, &usecase.PostMessageInput{
		ThreadID: thread.ID,
		Type:     entity.MessageText,
		Content:  "your order ships tomorrow",
	})
	require.NoError(t, err)
	assert.Equal(t, sales.ID, message.SenderID)
	assert.Equal(t, entity.RoleSales, message.SenderRole)
	assert.Equal(t, "your order ships tomorrow", message.Content)
}

func TestChatService_PostMessage_EmptyContent(t *testing.T) {
	fx := createTestChatService(t)

	_, err := fx.service.PostMessage(context.Background(), consumerUser(), &usecase.PostMessageInput{
		ThreadID: uuid.New(),
		Type:     entity.MessageText,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_PostMessage_OtherCompanyThreadReadsAsNotFound(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	sales := supplierStaff(entity.RoleSales, uuid.New())
	thread := &entity.Thread{ID: uuid.New(), SupplierID: uuid.New(), ConsumerID: uuid.New()}

	fx.threadRepo.EXPECT().FindThreadByID(ctx, thread.ID).Return(thread, nil)

	_, err := fx.service.PostMessage(ctx, sales, &usecase.PostMessageInput{
		ThreadID: thread.ID,
		Type:     entity.MessageText,
		Content:  "hello",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrThreadNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_ListMessages_MarksRead(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	consumer := consumerUser()
	thread := &entity.Thread{ID: uuid.New(), SupplierID: uuid.New(), ConsumerID: consumer.ID}
	messages := []*entity.Message{
		{ID: uuid.New(), ThreadID: thread.ID, Content: "hi"},
		{ID: uuid.New(), ThreadID: thread.ID, Content: "still there?"},
	}

	fx.threadRepo.EXPECT().FindThreadByID(ctx, thread.ID).Return(thread, nil)
	fx.threadRepo.EXPECT().ListMessages(ctx, thread.ID).Return(messages, nil)
	fx.threadRepo.EXPECT().MarkRead(ctx, thread.ID, consumer.ID).Return(nil)

	got, err := fx.service.ListMessages(ctx, consumer, thread.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestChatService_EscalateThread_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	thread := &entity.Thread{ID: uuid.New(), SupplierID: supplierID, ConsumerID: uuid.New()}

	fx.threadRepo.EXPECT().FindThreadByID(ctx, thread.ID).Return(thread, nil)
	fx.threadRepo.EXPECT().UpdateThread(ctx, thread).Return(nil)

	escalated, err := fx.service.EscalateThread(ctx, sales, thread.ID)
	require.NoError(t, err)
	assert.True(t, escalated.Escalated)
	require.NotNil(t, escalated.EscalatedBy)
	assert.Equal(t, sales.ID, *escalated.EscalatedBy)
	assert.WithinDuration(t, time.Now(), *escalated.EscalatedAt, time.Second)
}

func TestChatService_EscalateThread_Twice(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	sales := supplierStaff(entity.RoleSales, supplierID)
	thread := &entity.Thread{ID: uuid.New(), SupplierID: supplierID, ConsumerID: uuid.New(), Escalated: true}

	fx.threadRepo.EXPECT().FindThreadByID(ctx, thread.ID).Return(thread, nil)

	_, err := fx.service.EscalateThread(ctx, sales, thread.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrIllegalTransition.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_EscalateThread_ConsumerForbidden(t *testing.T) {
	fx := createTestChatService(t)

	_, err := fx.service.EscalateThread(context.Background(), consumerUser(), uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_AssignSales_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	sales := supplierStaff(entity.RoleSales, supplierID)
	thread := &entity.Thread{ID: uuid.New(), SupplierID: supplierID, ConsumerID: uuid.New()}

	fx.threadRepo.EXPECT().FindThreadByID(ctx, thread.ID).Return(thread, nil)
	fx.userRepo.EXPECT().FindByID(ctx, sales.ID).Return(sales, nil)
	fx.threadRepo.EXPECT().UpdateThread(ctx, thread).Return(nil)

	assigned, err := fx.service.AssignSales(ctx, owner, thread.ID, sales.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedSalesID)
	assert.Equal(t, sales.ID, *assigned.AssignedSalesID)
}

func TestChatService_AssignSales_WrongCompany(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	otherSales := supplierStaff(entity.RoleSales, uuid.New())
	thread := &entity.Thread{ID: uuid.New(), SupplierID: supplierID, ConsumerID: uuid.New()}

	fx.threadRepo.EXPECT().FindThreadByID(ctx, thread.ID).Return(thread, nil)
	fx.userRepo.EXPECT().FindByID(ctx, otherSales.ID).Return(otherSales, nil)

	_, err := fx.service.AssignSales(ctx, owner, thread.ID, otherSales.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_AssignSales_SalesForbidden(t *testing.T) {
	fx := createTestChatService(t)

	sales := supplierStaff(entity.RoleSales, uuid.New())

	_, err := fx.service.AssignSales(context.Background(), sales, uuid.New(), uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestChatService_ListThreads_FillsActivity(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	owner := supplierStaff(entity.RoleOwner, supplierID)
	thread := &entity.Thread{ID: uuid.New(), SupplierID: supplierID, ConsumerID: uuid.New()}

	fx.threadRepo.EXPECT().
		ListBySupplier(ctx, supplierID).
		Return([]*entity.Thread{thread}, nil)
	fx.threadRepo.EXPECT().CountUnread(ctx, thread.ID, owner.ID).Return(3, nil)
	fx.threadRepo.EXPECT().
		ListMessages(ctx, thread.ID).
		Return([]*entity.Message{{ID: uuid.New(), Content: "latest"}}, nil)

	threads, err := fx.service.ListThreads(ctx, owner)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, 3, threads[0].UnreadCount)
	require.NotNil(t, threads[0].LastMessage)
	assert.Equal(t, "latest", threads[0].LastMessage.Content)
}
