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

// linkRepository implements the repository.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{
		db: db,
	}
}

// Create persists a new link request. The supplier/consumer pair is unique,
// so a second request surfaces as ErrDuplicateLink.
func (repo *linkRepository) Create(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLink
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid supplier or consumer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindByID retrieves a link by its unique ID.
func (repo *linkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by id")
	}

	return toLinkDomain(&linkM), nil
}

// FindBySupplierAndConsumer retrieves the link between a supplier company and a consumer.
func (repo *linkRepository) FindBySupplierAndConsumer(ctx context.Context, supplierID, consumerID uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ? AND consumer_id = ?", supplierID, consumerID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by supplier and consumer")
	}

	return toLinkDomain(&linkM), nil
}

// ListBySupplier retrieves all non-archived links of a supplier company.
func (repo *linkRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Link, error) {
	return repo.list(ctx, "supplier_id = ?", supplierID)
}

// ListByConsumer retrieves all non-archived links of a consumer.
func (repo *linkRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Link, error) {
	return repo.list(ctx, "consumer_id = ?", consumerID)
}

func (repo *linkRepository) list(ctx context.Context, cond string, arg any) ([]*entity.Link, error) {
	var linkModels []*model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where(cond, arg).
		Where("archived = ?", false).
		Order("requested_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}

	links := make([]*entity.Link, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toLinkDomain(linkM))
	}

	return links, nil
}

// Update modifies an existing link.
func (repo *linkRepository) Update(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Save(linkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update link")
	}

	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// toLinkDomain converts a GORM LinkModel to a domain Link entity.
func toLinkDomain(data *model.LinkModel) *entity.Link {
	if data == nil {
		return nil
	}

	return &entity.Link{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		ConsumerID:  data.ConsumerID,
		Status:      entity.LinkStatus(data.Status),
		RequestedAt: data.RequestedAt,
		RespondedAt: data.RespondedAt,
		RespondedBy: data.RespondedBy,
		Archived:    data.Archived,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromLinkDomain converts a domain Link entity to a GORM LinkModel.
func fromLinkDomain(data *entity.Link) *model.LinkModel {
	if data == nil {
		return nil
	}

	return &model.LinkModel{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		ConsumerID:  data.ConsumerID,
		Status:      string(data.Status),
		RequestedAt: data.RequestedAt,
		RespondedAt: data.RespondedAt,
		RespondedBy: data.RespondedBy,
		Archived:    data.Archived,
	}
}
