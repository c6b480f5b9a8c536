package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// incidentService implements the IncidentUsecase interface.
type incidentService struct {
	incidentRepo repository.IncidentRepository
	logger       *slog.Logger
}

// NewIncidentService is the constructor for incidentService.
func NewIncidentService(incidentRepo repository.IncidentRepository, logger *slog.Logger) usecase.IncidentUsecase {
	return &incidentService{
		incidentRepo: incidentRepo,
		logger:       logger,
	}
}

// Create records a new incident for the actor's company.
func (srv *incidentService) Create(ctx context.Context, actor *entity.User, input *usecase.CreateIncidentInput) (*entity.Incident, error) {
	scope, err := srv.incidentScope(actor)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("incident title must not be empty")
	}
	if !input.Priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown incident priority")
	}

	incident := &entity.Incident{
		SupplierID:  scope.SupplierID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      entity.IncidentOpen,
		OwnerID:     actor.ID,
	}
	if err := srv.incidentRepo.Create(ctx, incident); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.logger.Info("Incident created", "incidentID", incident.ID, "priority", incident.Priority)

	return incident, nil
}

// Start moves an open incident into progress.
func (srv *incidentService) Start(ctx context.Context, actor *entity.User, incidentID uuid.UUID) (*entity.Incident, error) {
	incident, err := srv.companyIncident(ctx, actor, incidentID)
	if err != nil {
		return nil, err
	}

	if err := incident.Start(); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.incidentRepo.Update(ctx, incident); err != nil {
		return nil, errors.WithStack(err)
	}

	return incident, nil
}

// Resolve finishes an incident.
func (srv *incidentService) Resolve(ctx context.Context, actor *entity.User, incidentID uuid.UUID) (*entity.Incident, error) {
	incident, err := srv.companyIncident(ctx, actor, incidentID)
	if err != nil {
		return nil, err
	}

	if err := incident.Resolve(time.Now()); err != nil {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(err.Error())
	}
	if err := srv.incidentRepo.Update(ctx, incident); err != nil {
		return nil, errors.WithStack(err)
	}

	return incident, nil
}

// List returns the actor's company incidents.
func (srv *incidentService) List(ctx context.Context, actor *entity.User) ([]*entity.Incident, error) {
	scope, err := srv.incidentScope(actor)
	if err != nil {
		return nil, err
	}

	return srv.incidentRepo.ListBySupplier(ctx, scope.SupplierID)
}

// incidentScope resolves the actor's company and checks canManageIncidents.
func (srv *incidentService) incidentScope(actor *entity.User) (entity.Scope, error) {
	if !actor.Permissions().CanManageIncidents {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("incidents require canManageIncidents")
	}

	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return entity.Scope{}, domainerrors.ErrForbidden.WrapMessage("incident access failed")
	}

	return scope, nil
}

func (srv *incidentService) companyIncident(ctx context.Context, actor *entity.User, incidentID uuid.UUID) (*entity.Incident, error) {
	scope, err := srv.incidentScope(actor)
	if err != nil {
		return nil, err
	}

	incident, err := srv.incidentRepo.FindByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			return nil, domainerrors.ErrIncidentNotFound.WrapMessage("incident lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find incident")
	}
	// Cross-company IDs read as absent, not forbidden.
	if incident.SupplierID != scope.SupplierID {
		return nil, domainerrors.ErrIncidentNotFound.WrapMessage("incident lookup failed")
	}

	return incident, nil
}
