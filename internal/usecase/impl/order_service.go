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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	linkRepo  repository.LinkRepository
	publisher service.EventPublisher
	notifier  service.NotificationService
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	linkRepo repository.LinkRepository,
	publisher service.EventPublisher,
	notifier service.NotificationService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		linkRepo:  linkRepo,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Create places an order against a supplier the consumer has an approved
// link with. Item prices and names are snapshotted from the catalog inside
// one transaction so a concurrent price change cannot split an order.
func (srv *orderService) Create(ctx context.Context, actor *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if actor.Role != entity.RoleConsumer {
		return nil, domainerrors.ErrForbidden.WrapMessage("orders are placed by consumers")
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one item")
	}

	link, err := srv.linkRepo.FindBySupplierAndConsumer(ctx, input.SupplierID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, domainerrors.ErrLinkNotApproved.WrapMessage("ordering requires an approved link")
		}

		return nil, errors.Wrap(err, "failed to find link")
	}
	if link.Status != entity.LinkApproved {
		return nil, domainerrors.ErrLinkNotApproved.WrapMessage("ordering requires an approved link")
	}

	order := &entity.Order{
		SupplierID: input.SupplierID,
		ConsumerID: actor.ID,
		Status:     entity.OrderPending,
		Notes:      input.Notes,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		items := make([]entity.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage("order creation failed")
				}

				return errors.Wrap(err, "failed to find product")
			}
			if product.SupplierID != input.SupplierID || product.Archived {
				return domainerrors.ErrProductNotFound.WrapMessage("order creation failed")
			}

			item, err := entity.NewOrderItem(product, line.Quantity)
			if err != nil {
				return domainerrors.ErrOrderInvalid.WrapMessage(err.Error())
			}
			items = append(items, item)
		}

		order.Items = items
		order.TotalKZT = entity.SumItems(items)

		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, constants.EventOrderCreated, order, actor.ID)
	srv.logger.Info("Order created", "orderID", order.ID, "supplierID", order.SupplierID, "totalKZT", order.TotalKZT)

	return order, nil
}

// Get returns a single order if it is visible to the actor.
func (srv *orderService) Get(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("order lookup failed")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	// Cross-company IDs read as absent, not forbidden.
	if !scope.Sees(order) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
	}

	return order, nil
}

// Accept moves a pending order to accepted and decrements product stock for
// each line within the same transaction.
func (srv *orderService) Accept(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.supplierOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Accept(actor.ID, time.Now()); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		for _, item := range order.Items {
			product, err := productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				return errors.Wrap(err, "failed to find product for stock decrement")
			}
			if product.Stock < item.Quantity {
				return domainerrors.ErrOrderInvalid.WrapMessage("insufficient stock to accept order")
			}

			product.Stock -= item.Quantity
			if err := productRepo.Update(ctx, product); err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		return repoFactory.NewOrderRepository().Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, constants.EventOrderAccepted, order, actor.ID)
	srv.notify(ctx, order.ConsumerID, "Order accepted", "Your order has been accepted by the supplier")

	return order, nil
}

// Reject moves a pending order to rejected.
func (srv *orderService) Reject(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.supplierOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Reject(actor.ID, time.Now()); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.publishEvent(ctx, constants.EventOrderRejected, order, actor.ID)
	srv.notify(ctx, order.ConsumerID, "Order rejected", "Your order has been rejected by the supplier")

	return order, nil
}

// Complete moves an accepted order to completed.
func (srv *orderService) Complete(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.supplierOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Complete(); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.publishEvent(ctx, constants.EventOrderCompleted, order, actor.ID)
	srv.notify(ctx, order.ConsumerID, "Order completed", "Your order has been marked completed")

	return order, nil
}

// Cancel moves an accepted order to cancelled. Either side of the order may
// cancel it.
func (srv *orderService) Cancel(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.Get(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.Permissions().CanManageOrders {
		return nil, domainerrors.ErrForbidden.WrapMessage("order cancellation requires canManageOrders")
	}

	if err := order.Cancel(); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.publishEvent(ctx, constants.EventOrderCancelled, order, actor.ID)

	return order, nil
}

// List returns the orders visible to the actor.
func (srv *orderService) List(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("listing orders failed")
	}

	if scope.Role == entity.RoleConsumer {
		return srv.orderRepo.ListByConsumer(ctx, scope.UserID)
	}

	return srv.orderRepo.ListBySupplier(ctx, scope.SupplierID)
}

// supplierOrder loads an order for a supplier-side decision, enforcing
// canManageOrders and company visibility.
func (srv *orderService) supplierOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	if !actor.Role.IsSupplierSide() {
		return nil, domainerrors.ErrForbidden.WrapMessage("order decisions are supplier-side")
	}
	if !actor.Permissions().CanManageOrders {
		return nil, domainerrors.ErrForbidden.WrapMessage("order decisions require canManageOrders")
	}

	return srv.Get(ctx, actor, orderID)
}

func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order, actorID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.MarketEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		EntityID:   order.ID.String(),
		SupplierID: order.SupplierID.String(),
		ConsumerID: order.ConsumerID.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishMarketEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish order event", "error", err, "type", eventType)
	}
}

func (srv *orderService) notify(ctx context.Context, userID uuid.UUID, title, body string) {
	if srv.notifier == nil {
		return
	}
	if err := srv.notifier.NotifyUser(ctx, userID, title, body, nil); err != nil {
		srv.logger.Warn("Failed to push notification", "error", err, "userID", userID)
	}
}
