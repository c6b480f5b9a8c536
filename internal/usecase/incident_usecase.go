package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateIncidentInput defines the data for a new incident.
type CreateIncidentInput struct {
	Title       string
	Description string
	Priority    entity.IncidentPriority
}

// IncidentUsecase defines the interface for internal incident tracking.
// All operations require the canManageIncidents permission.
type IncidentUsecase interface {
	// Create records a new incident for the actor's company.
	Create(ctx context.Context, actor *entity.User, input *CreateIncidentInput) (*entity.Incident, error)

	// Start moves an open incident into progress.
	Start(ctx context.Context, actor *entity.User, incidentID uuid.UUID) (*entity.Incident, error)

	// Resolve finishes an incident.
	Resolve(ctx context.Context, actor *entity.User, incidentID uuid.UUID) (*entity.Incident, error)

	// List returns the actor's company incidents.
	List(ctx context.Context, actor *entity.User) ([]*entity.Incident, error)
}
