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

// complaintRepository implements the repository.ComplaintRepository interface.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{
		db: db,
	}
}

// Create persists a new complaint.
func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).Create(complaintM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order, supplier or consumer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required complaint information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	complaint.ID = complaintM.ID
	complaint.CreatedAt = complaintM.CreatedAt
	complaint.UpdatedAt = complaintM.UpdatedAt

	return nil
}

// FindByID retrieves a complaint by its unique ID.
func (repo *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&complaintM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by id")
	}

	return toComplaintDomain(&complaintM), nil
}

// ListBySupplier retrieves all non-archived complaints against a supplier.
func (repo *complaintRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Complaint, error) {
	return repo.list(ctx, "supplier_id = ?", supplierID)
}

// ListByConsumer retrieves all non-archived complaints filed by a consumer.
func (repo *complaintRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Complaint, error) {
	return repo.list(ctx, "consumer_id = ?", consumerID)
}

func (repo *complaintRepository) list(ctx context.Context, cond string, arg any) ([]*entity.Complaint, error) {
	var complaintModels []*model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Where(cond, arg).
		Where("archived = ?", false).
		Order("created_at DESC").
		Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints, nil
}

// Update modifies an existing complaint.
func (repo *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).Save(complaintM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update complaint")
	}

	complaint.UpdatedAt = complaintM.UpdatedAt

	return nil
}

// toComplaintDomain converts a GORM ComplaintModel to a domain Complaint entity.
func toComplaintDomain(data *model.ComplaintModel) *entity.Complaint {
	if data == nil {
		return nil
	}

	return &entity.Complaint{
		ID:          data.ID,
		OrderID:     data.OrderID,
		SupplierID:  data.SupplierID,
		ConsumerID:  data.ConsumerID,
		Subject:     data.Subject,
		Description: data.Description,
		Status:      entity.ComplaintStatus(data.Status),
		AssignedTo:  data.AssignedTo,
		Resolution:  data.Resolution,
		ClosedAt:    data.ClosedAt,
		Archived:    data.Archived,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromComplaintDomain converts a domain Complaint entity to a GORM ComplaintModel.
func fromComplaintDomain(data *entity.Complaint) *model.ComplaintModel {
	if data == nil {
		return nil
	}

	return &model.ComplaintModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		SupplierID:  data.SupplierID,
		ConsumerID:  data.ConsumerID,
		Subject:     data.Subject,
		Description: data.Description,
		Status:      string(data.Status),
		AssignedTo:  data.AssignedTo,
		Resolution:  data.Resolution,
		ClosedAt:    data.ClosedAt,
		Archived:    data.Archived,
	}
}
