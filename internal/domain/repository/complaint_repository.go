package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrComplaintNotFound is returned when a complaint is not found.
var ErrComplaintNotFound = errors.New("complaint not found")

// ErrIncidentNotFound is returned when an incident is not found.
var ErrIncidentNotFound = errors.New("incident not found")

// ComplaintRepository defines operations for complaint persistence.
type ComplaintRepository interface {
	// Create persists a new complaint.
	Create(ctx context.Context, complaint *entity.Complaint) error

	// FindByID retrieves a complaint by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)

	// ListBySupplier retrieves all non-archived complaints against a supplier.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Complaint, error)

	// ListByConsumer retrieves all non-archived complaints filed by a consumer.
	ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Complaint, error)

	// Update modifies an existing complaint.
	Update(ctx context.Context, complaint *entity.Complaint) error
}

// IncidentRepository defines operations for incident persistence.
type IncidentRepository interface {
	// Create persists a new incident.
	Create(ctx context.Context, incident *entity.Incident) error

	// FindByID retrieves an incident by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error)

	// ListBySupplier retrieves all non-archived incidents of a supplier.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Incident, error)

	// Update modifies an existing incident.
	Update(ctx context.Context, incident *entity.Incident) error
}
