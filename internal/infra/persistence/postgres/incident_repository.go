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

// incidentRepository implements the repository.IncidentRepository interface.
type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository is the constructor for incidentRepository.
func NewIncidentRepository(db *gorm.DB) repository.IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}

// Create persists a new incident.
func (repo *incidentRepository) Create(ctx context.Context, incident *entity.Incident) error {
	incidentM := fromIncidentDomain(incident)

	if err := repo.db.WithContext(ctx).Create(incidentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid supplier reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required incident information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create incident")
	}

	incident.ID = incidentM.ID
	incident.CreatedAt = incidentM.CreatedAt
	incident.UpdatedAt = incidentM.UpdatedAt

	return nil
}

// FindByID retrieves an incident by its unique ID.
func (repo *incidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error) {
	var incidentM model.IncidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&incidentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIncidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find incident by id")
	}

	return toIncidentDomain(&incidentM), nil
}

// ListBySupplier retrieves all non-archived incidents of a supplier.
func (repo *incidentRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Incident, error) {
	var incidentModels []*model.IncidentModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Where("archived = ?", false).
		Order("created_at DESC").
		Find(&incidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list incidents by supplier")
	}

	incidents := make([]*entity.Incident, 0, len(incidentModels))
	for _, incidentM := range incidentModels {
		incidents = append(incidents, toIncidentDomain(incidentM))
	}

	return incidents, nil
}

// Update modifies an existing incident.
func (repo *incidentRepository) Update(ctx context.Context, incident *entity.Incident) error {
	incidentM := fromIncidentDomain(incident)

	if err := repo.db.WithContext(ctx).Save(incidentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update incident")
	}

	incident.UpdatedAt = incidentM.UpdatedAt

	return nil
}

// toIncidentDomain converts a GORM IncidentModel to a domain Incident entity.
func toIncidentDomain(data *model.IncidentModel) *entity.Incident {
	if data == nil {
		return nil
	}

	return &entity.Incident{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		Title:       data.Title,
		Description: data.Description,
		Priority:    entity.IncidentPriority(data.Priority),
		Status:      entity.IncidentStatus(data.Status),
		OwnerID:     data.OwnerID,
		ResolvedAt:  data.ResolvedAt,
		Archived:    data.Archived,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromIncidentDomain converts a domain Incident entity to a GORM IncidentModel.
func fromIncidentDomain(data *entity.Incident) *model.IncidentModel {
	if data == nil {
		return nil
	}

	return &model.IncidentModel{
		ID:          data.ID,
		SupplierID:  data.SupplierID,
		Title:       data.Title,
		Description: data.Description,
		Priority:    string(data.Priority),
		Status:      string(data.Status),
		OwnerID:     data.OwnerID,
		ResolvedAt:  data.ResolvedAt,
		Archived:    data.Archived,
	}
}
