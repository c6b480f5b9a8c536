package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for chat thread handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

type openThreadRequest struct {
	SupplierID uuid.UUID `json:"supplierId"`
	ConsumerID uuid.UUID `json:"consumerId"`
}

type postMessageRequest struct {
	Type    entity.MessageType `json:"type"`
	Content string             `json:"content" validate:"required"`
}

type assignSalesRequest struct {
	SalesID uuid.UUID `json:"salesId"`
}

// OpenThread returns the thread between a consumer and a supplier, creating
// it when the partnership is approved.
func (h *ChatHandler) OpenThread(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	var req openThreadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid thread input")
	}

	// A consumer can omit its own ID, supplier staff their company ID.
	if req.ConsumerID == uuid.Nil && actor.Role == entity.RoleConsumer {
		req.ConsumerID = actor.ID
	}
	if req.SupplierID == uuid.Nil && actor.SupplierID != nil {
		req.SupplierID = *actor.SupplierID
	}

	thread, err := h.uc.OpenThread(c.Request().Context(), actor, req.SupplierID, req.ConsumerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thread, "")
}

// ListThreads returns the threads visible to the actor with activity info.
func (h *ChatHandler) ListThreads(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	threads, err := h.uc.ListThreads(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, threads, "")
}

// PostMessage appends a message to a thread the actor participates in.
func (h *ChatHandler) PostMessage(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Type == "" {
		req.Type = entity.MessageText
	}

	message, err := h.uc.PostMessage(c.Request().Context(), actor, &usecase.PostMessageInput{
		ThreadID: threadID,
		Type:     req.Type,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message posted")
}

// ListMessages returns a thread's messages and marks them read for the actor.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	messages, err := h.uc.ListMessages(c.Request().Context(), actor, threadID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// MarkRead clears the actor's unread counter without returning the messages.
func (h *ChatHandler) MarkRead(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	if _, err := h.uc.ListMessages(c.Request().Context(), actor, threadID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Thread marked read")
}

// Escalate flags a thread for owner and admin attention.
func (h *ChatHandler) Escalate(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	thread, err := h.uc.EscalateThread(c.Request().Context(), actor, threadID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thread, "Thread escalated")
}

// AssignSales pins a thread to one of the supplier's sales users.
func (h *ChatHandler) AssignSales(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	var req assignSalesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	thread, err := h.uc.AssignSales(c.Request().Context(), actor, threadID, req.SalesID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thread, "Sales assigned")
}
