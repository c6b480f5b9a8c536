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

// ComplaintHandler holds dependencies for complaint handlers.
type ComplaintHandler struct {
	uc     usecase.ComplaintUsecase
	logger *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler, injected by Fx.
func NewComplaintHandler(uc usecase.ComplaintUsecase, logger *slog.Logger) *ComplaintHandler {
	return &ComplaintHandler{uc: uc, logger: logger}
}

type fileComplaintRequest struct {
	OrderID     uuid.UUID `json:"orderId"`
	Subject     string    `json:"subject" validate:"required"`
	Description string    `json:"description"`
}

type resolveComplaintRequest struct {
	Resolution string `json:"resolution" validate:"required"`
}

// File creates a complaint against one of the consumer's own orders.
func (h *ComplaintHandler) File(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req fileComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.uc.File(c.Request().Context(), actor, &usecase.FileComplaintInput{
		OrderID:     req.OrderID,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, complaint, "Complaint filed")
}

// Start moves an open complaint into progress, assigning the actor.
func (h *ComplaintHandler) Start(c echo.Context) error {
	return h.transition(c, h.uc.Start, "Complaint in progress")
}

// Escalate raises a complaint to owner/admin attention.
func (h *ComplaintHandler) Escalate(c echo.Context) error {
	return h.transition(c, h.uc.Escalate, "Complaint escalated")
}

// Resolve records a resolution on a complaint.
func (h *ComplaintHandler) Resolve(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid complaint ID")
	}

	var req resolveComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.uc.Resolve(c.Request().Context(), actor, &usecase.ResolveComplaintInput{
		ComplaintID: complaintID,
		Resolution:  req.Resolution,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complaint, "Complaint resolved")
}

// Close finishes a resolved complaint.
func (h *ComplaintHandler) Close(c echo.Context) error {
	return h.transition(c, h.uc.Close, "Complaint closed")
}

// List returns the complaints visible to the actor.
func (h *ComplaintHandler) List(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	complaints, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complaints, "")
}

// transition shares the plumbing of the complaint state endpoints.
func (h *ComplaintHandler) transition(c echo.Context, op func(context.Context, *entity.User, uuid.UUID) (*entity.Complaint, error), message string) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid complaint ID")
	}

	complaint, err := op(c.Request().Context(), actor, complaintID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complaint, message)
}
