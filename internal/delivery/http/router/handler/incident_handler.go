package handler

import (
	"context"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IncidentHandler holds dependencies for internal incident handlers.
type IncidentHandler struct {
	uc     usecase.IncidentUsecase
	logger *slog.Logger
}

// NewIncidentHandler is the constructor for IncidentHandler, injected by Fx.
func NewIncidentHandler(uc usecase.IncidentUsecase, logger *slog.Logger) *IncidentHandler {
	return &IncidentHandler{uc: uc, logger: logger}
}

type createIncidentRequest struct {
	Title       string                  `json:"title" validate:"required"`
	Description string                  `json:"description"`
	Priority    entity.IncidentPriority `json:"priority"`
}

// Create records a new incident for the actor's company.
func (h *IncidentHandler) Create(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req createIncidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid incident input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	incident, err := h.uc.Create(c.Request().Context(), actor, &usecase.CreateIncidentInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, incident, "Incident created")
}

// Start moves an open incident into progress.
func (h *IncidentHandler) Start(c echo.Context) error {
	return h.transition(c, h.uc.Start, "Incident in progress")
}

// Resolve finishes an incident.
func (h *IncidentHandler) Resolve(c echo.Context) error {
	return h.transition(c, h.uc.Resolve, "Incident resolved")
}

// List returns the actor's company incidents.
func (h *IncidentHandler) List(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	incidents, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, incidents, "")
}

func (h *IncidentHandler) transition(c echo.Context, op func(context.Context, *entity.User, uuid.UUID) (*entity.Incident, error), message string) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid incident ID")
	}

	incident, err := op(c.Request().Context(), actor, incidentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, incident, message)
}
