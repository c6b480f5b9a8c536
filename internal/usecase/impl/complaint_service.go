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

// complaintService implements the ComplaintUsecase interface.
type complaintService struct {
	complaintRepo repository.ComplaintRepository
	orderRepo     repository.OrderRepository
	publisher     service.EventPublisher
	notifier      service.NotificationService
	logger        *slog.Logger
}

// NewComplaintService is the constructor for complaintService.
func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	notifier service.NotificationService,
	logger *slog.Logger,
) usecase.ComplaintUsecase {
	return &complaintService{
		complaintRepo: complaintRepo,
		orderRepo:     orderRepo,
		publisher:     publisher,
		notifier:      notifier,
		logger:        logger,
	}
}

// File creates a complaint against one of the consumer's own orders.
func (srv *complaintService) File(ctx context.Context, actor *entity.User, input *usecase.FileComplaintInput) (*entity.Complaint, error) {
	if actor.Role != entity.RoleConsumer {
		return nil, domainerrors.ErrForbidden.WrapMessage("complaints are filed by consumers")
	}
	if input.Subject == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("complaint subject must not be empty")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("complaint filing failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.ConsumerID != actor.ID {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("complaint filing failed")
	}

	complaint := &entity.Complaint{
		OrderID:     order.ID,
		SupplierID:  order.SupplierID,
		ConsumerID:  actor.ID,
		Subject:     input.Subject,
		Description: input.Description,
		Status:      entity.ComplaintOpen,
	}
	if err := srv.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.publishEvent(ctx, complaint, actor.ID)
	srv.logger.Info("Complaint filed", "complaintID", complaint.ID, "orderID", order.ID)

	return complaint, nil
}

// Start moves an open complaint into progress and assigns the actor.
func (srv *complaintService) Start(ctx context.Context, actor *entity.User, complaintID uuid.UUID) (*entity.Complaint, error) {
	complaint, err := srv.staffComplaint(ctx, actor, complaintID)
	if err != nil {
		return nil, err
	}

	if err := complaint.Start(&actor.ID); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.WithStack(err)
	}

	return complaint, nil
}

// Escalate raises a complaint to owner/admin attention.
func (srv *complaintService) Escalate(ctx context.Context, actor *entity.User, complaintID uuid.UUID) (*entity.Complaint, error) {
	complaint, err := srv.staffComplaint(ctx, actor, complaintID)
	if err != nil {
		return nil, err
	}

	if err := complaint.Escalate(actor.Role); err != nil {
		if errors.Is(err, entity.ErrInvalidTransition) {
			return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrForbidden.WrapMessage(err.Error())
	}
	if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.logger.Info("Complaint escalated", "complaintID", complaint.ID, "actorID", actor.ID)

	return complaint, nil
}

// Resolve records a resolution. Escalated complaints require owner/admin.
func (srv *complaintService) Resolve(ctx context.Context, actor *entity.User, input *usecase.ResolveComplaintInput) (*entity.Complaint, error) {
	if input.Resolution == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("resolution must not be empty")
	}

	complaint, err := srv.staffComplaint(ctx, actor, input.ComplaintID)
	if err != nil {
		return nil, err
	}

	if err := complaint.Resolve(actor.Role, input.Resolution); err != nil {
		if errors.Is(err, entity.ErrInvalidTransition) {
			return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrForbidden.WrapMessage(err.Error())
	}
	if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.notify(ctx, complaint.ConsumerID, "Complaint resolved", "Your complaint has been resolved by the supplier")

	return complaint, nil
}

// Close finishes a resolved complaint.
func (srv *complaintService) Close(ctx context.Context, actor *entity.User, complaintID uuid.UUID) (*entity.Complaint, error) {
	complaint, err := srv.staffComplaint(ctx, actor, complaintID)
	if err != nil {
		return nil, err
	}

	if err := complaint.Close(time.Now()); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.WithStack(err)
	}

	return complaint, nil
}

// List returns the complaints visible to the actor.
func (srv *complaintService) List(ctx context.Context, actor *entity.User) ([]*entity.Complaint, error) {
	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("listing complaints failed")
	}

	if scope.Role == entity.RoleConsumer {
		return srv.complaintRepo.ListByConsumer(ctx, scope.UserID)
	}
	if !actor.Permissions().CanHandleComplaints {
		return nil, domainerrors.ErrForbidden.WrapMessage("complaint handling requires canHandleComplaints")
	}

	return srv.complaintRepo.ListBySupplier(ctx, scope.SupplierID)
}

// staffComplaint loads a complaint for supplier-side handling, enforcing
// canHandleComplaints and company visibility.
func (srv *complaintService) staffComplaint(ctx context.Context, actor *entity.User, complaintID uuid.UUID) (*entity.Complaint, error) {
	if !actor.Role.IsSupplierSide() {
		return nil, domainerrors.ErrForbidden.WrapMessage("complaint handling is supplier-side")
	}
	if !actor.Permissions().CanHandleComplaints {
		return nil, domainerrors.ErrForbidden.WrapMessage("complaint handling requires canHandleComplaints")
	}

	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("complaint handling failed")
	}

	complaint, err := srv.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound.WrapMessage("complaint lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find complaint")
	}
	// Cross-company IDs read as absent, not forbidden.
	if !scope.Sees(complaint) {
		return nil, domainerrors.ErrComplaintNotFound.WrapMessage("complaint lookup failed")
	}

	return complaint, nil
}

func (srv *complaintService) publishEvent(ctx context.Context, complaint *entity.Complaint, actorID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.MarketEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventComplaintFiled,
		EntityID:   complaint.ID.String(),
		SupplierID: complaint.SupplierID.String(),
		ConsumerID: complaint.ConsumerID.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishMarketEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish complaint event", "error", err, "complaintID", complaint.ID)
	}
}

func (srv *complaintService) notify(ctx context.Context, userID uuid.UUID, title, body string) {
	if srv.notifier == nil {
		return
	}
	if err := srv.notifier.NotifyUser(ctx, userID, title, body, nil); err != nil {
		srv.logger.Warn("Failed to push notification", "error", err, "userID", userID)
	}
}
