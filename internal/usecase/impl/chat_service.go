package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	threadRepo repository.ThreadRepository
	linkRepo   repository.LinkRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	notifier   service.NotificationService
	logger     *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(
	threadRepo repository.ThreadRepository,
	linkRepo repository.LinkRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	notifier service.NotificationService,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		threadRepo: threadRepo,
		linkRepo:   linkRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		notifier:   notifier,
		logger:     logger,
	}
}

// OpenThread returns the thread between a consumer and a supplier, creating
// it when the partnership is approved and no thread exists yet.
func (srv *chatService) OpenThread(ctx context.Context, actor *entity.User, supplierID, consumerID uuid.UUID) (*entity.Thread, error) {
	scope, err := srv.chatScope(actor)
	if err != nil {
		return nil, err
	}

	// Each side can only open a thread on its own key.
	if scope.Role == entity.RoleConsumer {
		if consumerID != scope.UserID {
			return nil, domainerrors.ErrForbidden.WrapMessage("consumers open threads for themselves")
		}
	} else if supplierID != scope.SupplierID {
		return nil, domainerrors.ErrForbidden.WrapMessage("staff open threads for their own company")
	}

	thread, err := srv.threadRepo.FindBySupplierAndConsumer(ctx, supplierID, consumerID)
	if err == nil {
		return srv.withActivity(ctx, thread, scope.UserID), nil
	}
	if !errors.Is(err, repository.ErrThreadNotFound) {
		return nil, errors.Wrap(err, "failed to find thread")
	}

	link, err := srv.linkRepo.FindBySupplierAndConsumer(ctx, supplierID, consumerID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, domainerrors.ErrLinkNotApproved.WrapMessage("chat requires an approved link")
		}

		return nil, errors.Wrap(err, "failed to find link")
	}
	if link.Status != entity.LinkApproved {
		return nil, domainerrors.ErrLinkNotApproved.WrapMessage("chat requires an approved link")
	}

	thread = &entity.Thread{
		SupplierID: supplierID,
		ConsumerID: consumerID,
	}
	if err := srv.threadRepo.CreateThread(ctx, thread); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			// Lost a creation race; the winner's thread serves both callers.
			return srv.threadRepo.FindBySupplierAndConsumer(ctx, supplierID, consumerID)
		}

		return nil, errors.WithStack(err)
	}

	srv.logger.Info("Thread opened", "threadID", thread.ID, "supplierID", supplierID, "consumerID", consumerID)

	return thread, nil
}

// ListThreads returns the threads visible to the actor with unread counts
// and last messages filled in.
func (srv *chatService) ListThreads(ctx context.Context, actor *entity.User) ([]*entity.Thread, error) {
	scope, err := srv.chatScope(actor)
	if err != nil {
		return nil, err
	}

	var threads []*entity.Thread
	if scope.Role == entity.RoleConsumer {
		threads, err = srv.threadRepo.ListByConsumer(ctx, scope.UserID)
	} else {
		threads, err = srv.threadRepo.ListBySupplier(ctx, scope.SupplierID)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for i := range threads {
		threads[i] = srv.withActivity(ctx, threads[i], scope.UserID)
	}

	return threads, nil
}

// PostMessage appends a message to a thread the actor participates in.
func (srv *chatService) PostMessage(ctx context.Context, actor *entity.User, input *usecase.PostMessageInput) (*entity.Message, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown message type")
	}
	if input.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message content must not be empty")
	}

	thread, err := srv.participantThread(ctx, actor, input.ThreadID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ThreadID:   thread.ID,
		SenderID:   actor.ID,
		SenderRole: actor.Role,
		Type:       input.Type,
		Content:    input.Content,
	}
	if err := srv.threadRepo.AppendMessage(ctx, message); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.publishEvent(ctx, thread, actor.ID)
	if actor.Role == entity.RoleConsumer {
		if thread.AssignedSalesID != nil {
			srv.notify(ctx, *thread.AssignedSalesID, "New message", "A consumer sent a new chat message")
		}
	} else {
		srv.notify(ctx, thread.ConsumerID, "New message", "The supplier sent a new chat message")
	}

	return message, nil
}

// ListMessages returns a thread's messages in creation order and marks the
// other side's messages read for the actor.
func (srv *chatService) ListMessages(ctx context.Context, actor *entity.User, threadID uuid.UUID) ([]*entity.Message, error) {
	thread, err := srv.participantThread(ctx, actor, threadID)
	if err != nil {
		return nil, err
	}

	messages, err := srv.threadRepo.ListMessages(ctx, thread.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := srv.threadRepo.MarkRead(ctx, thread.ID, actor.ID); err != nil {
		srv.logger.Warn("Failed to mark messages read", "error", err, "threadID", thread.ID)
	}

	return messages, nil
}

// EscalateThread flags a thread for owner and admin attention.
func (srv *chatService) EscalateThread(ctx context.Context, actor *entity.User, threadID uuid.UUID) (*entity.Thread, error) {
	if !actor.Permissions().CanEscalate {
		return nil, domainerrors.ErrForbidden.WrapMessage("escalation requires canEscalate")
	}

	thread, err := srv.participantThread(ctx, actor, threadID)
	if err != nil {
		return nil, err
	}

	if err := thread.Escalate(actor.ID, time.Now()); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.threadRepo.UpdateThread(ctx, thread); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.logger.Info("Thread escalated", "threadID", thread.ID, "actorID", actor.ID)

	return thread, nil
}

// AssignSales pins a thread to one of the supplier's sales users.
func (srv *chatService) AssignSales(ctx context.Context, actor *entity.User, threadID, salesID uuid.UUID) (*entity.Thread, error) {
	if !actor.Permissions().CanManageUsers {
		return nil, domainerrors.ErrForbidden.WrapMessage("assignment requires canManageUsers")
	}

	thread, err := srv.participantThread(ctx, actor, threadID)
	if err != nil {
		return nil, err
	}

	sales, err := srv.userRepo.FindByID(ctx, salesID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("sales assignment failed")
		}

		return nil, errors.Wrap(err, "failed to find sales user")
	}
	if sales.Role != entity.RoleSales || sales.SupplierID == nil || *sales.SupplierID != thread.SupplierID || !sales.Active {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("assignee must be an active sales user of the same company")
	}

	thread.AssignedSalesID = &salesID
	if err := srv.threadRepo.UpdateThread(ctx, thread); err != nil {
		return nil, errors.WithStack(err)
	}

	return thread, nil
}

// chatScope resolves the actor's scope and checks canChat.
func (srv *chatService) chatScope(actor *entity.User) (entity.Scope, error) {
	if !actor.Permissions().CanChat {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("chat requires canChat")
	}

	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("chat access failed")
	}

	return scope, nil
}

// participantThread loads a thread and enforces visibility under the actor's
// scope.
func (srv *chatService) participantThread(ctx context.Context, actor *entity.User, threadID uuid.UUID) (*entity.Thread, error) {
	scope, err := srv.chatScope(actor)
	if err != nil {
		return nil, err
	}

	thread, err := srv.threadRepo.FindThreadByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return nil, domainerrors.ErrThreadNotFound.WrapMessage("thread lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find thread")
	}
	// Cross-company IDs read as absent, not forbidden.
	if !scope.Sees(thread) {
		return nil, domainerrors.ErrThreadNotFound.WrapMessage("thread lookup failed")
	}

	return thread, nil
}

// withActivity fills the unread count and last message of a thread for the
// reading user. Failures degrade to a thread without activity fields.
func (srv *chatService) withActivity(ctx context.Context, thread *entity.Thread, reader uuid.UUID) *entity.Thread {
	unread, err := srv.threadRepo.CountUnread(ctx, thread.ID, reader)
	if err != nil {
		srv.logger.Warn("Failed to count unread messages", "error", err, "threadID", thread.ID)

		return thread
	}
	thread.UnreadCount = unread

	messages, err := srv.threadRepo.ListMessages(ctx, thread.ID)
	if err != nil {
		srv.logger.Warn("Failed to load thread messages", "error", err, "threadID", thread.ID)

		return thread
	}
	if len(messages) > 0 {
		thread.LastMessage = messages[len(messages)-1]
	}

	return thread
}

func (srv *chatService) publishEvent(ctx context.Context, thread *entity.Thread, actorID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.MarketEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventMessagePosted,
		EntityID:   thread.ID.String(),
		SupplierID: thread.SupplierID.String(),
		ConsumerID: thread.ConsumerID.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishMarketEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish chat event", "error", err, "threadID", thread.ID)
	}
}

func (srv *chatService) notify(ctx context.Context, userID uuid.UUID, title, body string) {
	if srv.notifier == nil {
		return
	}
	if err := srv.notifier.NotifyUser(ctx, userID, title, body, nil); err != nil {
		srv.logger.Warn("Failed to push notification", "error", err, "userID", userID)
	}
}
