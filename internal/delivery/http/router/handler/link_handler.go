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

// LinkHandler holds dependencies for partnership link handlers.
type LinkHandler struct {
	uc     usecase.LinkUsecase
	logger *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler, injected by Fx.
func NewLinkHandler(uc usecase.LinkUsecase, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{uc: uc, logger: logger}
}

type requestLinkRequest struct {
	SupplierID uuid.UUID `json:"supplierId"`
}

type scanInviteRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// Request files a pending link request against a supplier.
func (h *LinkHandler) Request(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req requestLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link request input")
	}

	link, err := h.uc.RequestLink(c.Request().Context(), actor, req.SupplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Link requested")
}

// Scan files a link request from a scanned invite QR payload.
func (h *LinkHandler) Scan(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req scanInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.uc.RequestLinkFromInvite(c.Request().Context(), actor, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Link requested")
}

// InviteQR renders the supplier's invite QR code as a PNG image.
func (h *LinkHandler) InviteQR(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	png, err := h.uc.InviteQR(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Approve moves a pending link to approved.
func (h *LinkHandler) Approve(c echo.Context) error {
	return h.decide(c, h.uc.Approve, "Link approved")
}

// Decline moves a pending link to declined.
func (h *LinkHandler) Decline(c echo.Context) error {
	return h.decide(c, h.uc.Decline, "Link declined")
}

// Block suspends an approved link.
func (h *LinkHandler) Block(c echo.Context) error {
	return h.decide(c, h.uc.Block, "Link blocked")
}

// Unblock restores a blocked link to approved.
func (h *LinkHandler) Unblock(c echo.Context) error {
	return h.decide(c, h.uc.Unblock, "Link unblocked")
}

// List returns the links visible to the actor.
func (h *LinkHandler) List(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	links, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "")
}

// decide shares the plumbing of the four link decision endpoints.
func (h *LinkHandler) decide(c echo.Context, op func(context.Context, *entity.User, uuid.UUID) (*entity.Link, error), message string) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid link ID")
	}

	link, err := op(c.Request().Context(), actor, linkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, message)
}
