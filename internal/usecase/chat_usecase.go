package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PostMessageInput defines the data for a new chat message.
type PostMessageInput struct {
	ThreadID uuid.UUID
	Type     entity.MessageType
	Content  string
}

// ChatUsecase defines the interface for chat thread operations.
type ChatUsecase interface {
	// OpenThread returns the thread between a consumer and a supplier,
	// creating it if the partnership is approved and none exists yet.
	OpenThread(ctx context.Context, actor *entity.User, supplierID, consumerID uuid.UUID) (*entity.Thread, error)

	// ListThreads returns the threads visible to the actor, each with its
	// unread count and last message.
	ListThreads(ctx context.Context, actor *entity.User) ([]*entity.Thread, error)

	// PostMessage appends a message to a thread the actor participates in.
	PostMessage(ctx context.Context, actor *entity.User, input *PostMessageInput) (*entity.Message, error)

	// ListMessages returns a thread's messages and marks them read for the actor.
	ListMessages(ctx context.Context, actor *entity.User, threadID uuid.UUID) ([]*entity.Message, error)

	// EscalateThread flags a thread for owner and admin attention.
	EscalateThread(ctx context.Context, actor *entity.User, threadID uuid.UUID) (*entity.Thread, error)

	// AssignSales pins a thread to one of the supplier's sales users.
	AssignSales(ctx context.Context, actor *entity.User, threadID, salesID uuid.UUID) (*entity.Thread, error)
}
