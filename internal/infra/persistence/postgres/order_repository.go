// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its items. GORM inserts the
// association rows in the same statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid supplier, consumer or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its items by unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListBySupplier retrieves all non-archived orders of a supplier company.
func (repo *orderRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "supplier_id = ?", supplierID)
}

// ListByConsumer retrieves all non-archived orders of a consumer.
func (repo *orderRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "consumer_id = ?", consumerID)
}

func (repo *orderRepository) list(ctx context.Context, cond string, arg any) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(cond, arg).
		Where("archived = ?", false).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update modifies an existing order. Items are immutable after creation, so
// only the order row itself is written.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	updates := map[string]any{
		"status":       string(order.Status),
		"total_kzt":    order.TotalKZT,
		"notes":        order.Notes,
		"responded_at": order.RespondedAt,
		"responded_by": order.RespondedBy,
		"archived":     order.Archived,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Unit:        itemM.Unit,
			Quantity:    itemM.Quantity,
			PriceKZT:    itemM.PriceKZT,
			TotalKZT:    itemM.TotalKZT,
		})
	}

	return &entity.Order{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		ConsumerID:  data.ConsumerID,
		Status:      entity.OrderStatus(data.Status),
		Items:       items,
		TotalKZT:    data.TotalKZT,
		Notes:       data.Notes,
		RespondedAt: data.RespondedAt,
		RespondedBy: data.RespondedBy,
		Archived:    data.Archived,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			PriceKZT:    item.PriceKZT,
			TotalKZT:    item.TotalKZT,
		})
	}

	return &model.OrderModel{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		ConsumerID:  data.ConsumerID,
		Status:      string(data.Status),
		TotalKZT:    data.TotalKZT,
		Notes:       data.Notes,
		RespondedAt: data.RespondedAt,
		RespondedBy: data.RespondedBy,
		Archived:    data.Archived,
		Items:       items,
	}
}
