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

// linkService implements the LinkUsecase interface.
type linkService struct {
	linkRepo     repository.LinkRepository
	supplierRepo repository.SupplierRepository
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	notifier     service.NotificationService
	logger       *slog.Logger
}

// NewLinkService is the constructor for linkService.
func NewLinkService(
	linkRepo repository.LinkRepository,
	supplierRepo repository.SupplierRepository,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	notifier service.NotificationService,
	logger *slog.Logger,
) usecase.LinkUsecase {
	return &linkService{
		linkRepo:     linkRepo,
		supplierRepo: supplierRepo,
		qrService:    qrService,
		publisher:    publisher,
		notifier:     notifier,
		logger:       logger,
	}
}

// RequestLink files a pending link request from a consumer to a supplier.
func (srv *linkService) RequestLink(ctx context.Context, actor *entity.User, supplierID uuid.UUID) (*entity.Link, error) {
	if actor.Role != entity.RoleConsumer {
		return nil, domainerrors.ErrForbidden.WrapMessage("only consumers request partnerships")
	}

	supplier, err := srv.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound.WrapMessage("link request failed")
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}
	if !supplier.Active {
		return nil, domainerrors.ErrSupplierNotFound.WrapMessage("supplier is inactive")
	}

	link := &entity.Link{
		SupplierID:  supplier.ID,
		ConsumerID:  actor.ID,
		Status:      entity.LinkPending,
		RequestedAt: time.Now(),
	}
	if err := srv.linkRepo.Create(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateLink) {
			return nil, domainerrors.ErrLinkAlreadyExists.WrapMessage("link request failed")
		}

		return nil, errors.WithStack(err)
	}

	srv.publishEvent(ctx, constants.EventLinkRequested, link, actor.ID)
	srv.logger.Info("Link requested", "linkID", link.ID, "supplierID", supplier.ID, "consumerID", actor.ID)

	return link, nil
}

// RequestLinkFromInvite resolves an invite QR payload and files a link request.
func (srv *linkService) RequestLinkFromInvite(ctx context.Context, actor *entity.User, qrData string) (*entity.Link, error) {
	supplierID, err := srv.qrService.ParseInviteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid invite code")
	}

	return srv.RequestLink(ctx, actor, supplierID)
}

// InviteQR renders the acting staff user's company invite QR code.
func (srv *linkService) InviteQR(ctx context.Context, actor *entity.User) ([]byte, error) {
	scope, err := entity.ScopeFor(actor)
	if err != nil || !actor.Role.IsSupplierSide() {
		return nil, domainerrors.ErrForbidden.WrapMessage("invite codes belong to supplier staff")
	}

	png, err := srv.qrService.GenerateInviteQR(scope.SupplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR")
	}

	return png, nil
}

// Approve moves a pending link to approved.
func (srv *linkService) Approve(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error) {
	link, err := srv.respond(ctx, actor, linkID, func(link *entity.Link) error {
		return link.Approve(actor.ID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, constants.EventLinkApproved, link, actor.ID)
	srv.notify(ctx, link.ConsumerID, "Partnership approved", "Your partnership request was approved")

	return link, nil
}

// Decline moves a pending link to declined.
func (srv *linkService) Decline(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error) {
	link, err := srv.respond(ctx, actor, linkID, func(link *entity.Link) error {
		return link.Decline(actor.ID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, constants.EventLinkDeclined, link, actor.ID)
	srv.notify(ctx, link.ConsumerID, "Partnership declined", "Your partnership request was declined")

	return link, nil
}

// Block suspends an approved link.
func (srv *linkService) Block(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error) {
	return srv.respond(ctx, actor, linkID, func(link *entity.Link) error {
		return link.Block()
	})
}

// Unblock restores a blocked link to approved.
func (srv *linkService) Unblock(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error) {
	return srv.respond(ctx, actor, linkID, func(link *entity.Link) error {
		return link.Unblock()
	})
}

// respond loads a link, checks permission and scope, applies the transition
// and persists the result.
func (srv *linkService) respond(ctx context.Context, actor *entity.User, linkID uuid.UUID, transition func(*entity.Link) error) (*entity.Link, error) {
	if !actor.Permissions().CanApproveLinks {
		return nil, domainerrors.ErrForbidden.WrapMessage("link decisions require canApproveLinks")
	}

	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("link decisions require a supplier company")
	}

	link, err := srv.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, domainerrors.ErrLinkNotFound.WrapMessage("link decision failed")
		}

		return nil, errors.Wrap(err, "failed to find link")
	}
	if !scope.Sees(link) {
		// Cross-company IDs read as absent, not forbidden.
		return nil, domainerrors.ErrLinkNotFound.WrapMessage("link decision failed")
	}

	if err := transition(link); err != nil {
		if errors.Is(err, entity.ErrInvalidTransition) {
			return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
		}

		return nil, errors.WithStack(err)
	}

	if err := srv.linkRepo.Update(ctx, link); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.logger.Info("Link transition applied", "linkID", link.ID, "status", link.Status, "actorID", actor.ID)

	return link, nil
}

// List returns the links visible to the actor.
func (srv *linkService) List(ctx context.Context, actor *entity.User) ([]*entity.Link, error) {
	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("listing links failed")
	}

	if scope.Role == entity.RoleConsumer {
		return srv.linkRepo.ListByConsumer(ctx, scope.UserID)
	}

	return srv.linkRepo.ListBySupplier(ctx, scope.SupplierID)
}

func (srv *linkService) publishEvent(ctx context.Context, eventType string, link *entity.Link, actorID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.MarketEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		EntityID:   link.ID.String(),
		SupplierID: link.SupplierID.String(),
		ConsumerID: link.ConsumerID.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishMarketEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish link event", "error", err, "type", eventType)
	}
}

func (srv *linkService) notify(ctx context.Context, userID uuid.UUID, title, body string) {
	if srv.notifier == nil {
		return
	}
	if err := srv.notifier.NotifyUser(ctx, userID, title, body, nil); err != nil {
		srv.logger.Warn("Failed to push notification", "error", err, "userID", userID)
	}
}
