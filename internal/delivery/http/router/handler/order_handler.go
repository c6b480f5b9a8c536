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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Create places a new order against a linked supplier.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.Create(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// Get returns a single order visible to the actor.
func (h *OrderHandler) Get(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.Get(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Accept moves a pending order to accepted and decrements stock.
func (h *OrderHandler) Accept(c echo.Context) error {
	return h.transition(c, h.uc.Accept, "Order accepted")
}

// Reject moves a pending order to rejected.
func (h *OrderHandler) Reject(c echo.Context) error {
	return h.transition(c, h.uc.Reject, "Order rejected")
}

// Complete moves an accepted order to completed.
func (h *OrderHandler) Complete(c echo.Context) error {
	return h.transition(c, h.uc.Complete, "Order completed")
}

// Cancel moves an accepted order to cancelled.
func (h *OrderHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.uc.Cancel, "Order cancelled")
}

// List returns the orders visible to the actor.
func (h *OrderHandler) List(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	orders, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// transition shares the plumbing of the order state endpoints.
func (h *OrderHandler) transition(c echo.Context, op func(context.Context, *entity.User, uuid.UUID) (*entity.Order, error), message string) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := op(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, message)
}
