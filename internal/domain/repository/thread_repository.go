package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrThreadNotFound is returned when a chat thread is not found.
var ErrThreadNotFound = errors.New("thread not found")

// ThreadRepository defines operations for chat persistence. Messages are an
// append-only sequence per thread.
type ThreadRepository interface {
	// CreateThread persists a new thread.
	CreateThread(ctx context.Context, thread *entity.Thread) error

	// FindThreadByID retrieves a thread by its unique ID.
	FindThreadByID(ctx context.Context, id uuid.UUID) (*entity.Thread, error)

	// FindBySupplierAndConsumer retrieves the thread between a supplier
	// company and a consumer, if one exists.
	FindBySupplierAndConsumer(ctx context.Context, supplierID, consumerID uuid.UUID) (*entity.Thread, error)

	// ListBySupplier retrieves all non-archived threads of a supplier company.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Thread, error)

	// ListByConsumer retrieves all non-archived threads of a consumer.
	ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Thread, error)

	// UpdateThread modifies an existing thread.
	UpdateThread(ctx context.Context, thread *entity.Thread) error

	// AppendMessage appends a message to a thread.
	AppendMessage(ctx context.Context, message *entity.Message) error

	// ListMessages retrieves a thread's messages in creation order.
	ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entity.Message, error)

	// MarkRead marks every message of the thread not sent by reader as read.
	MarkRead(ctx context.Context, threadID, reader uuid.UUID) error

	// CountUnread counts messages of the thread not sent by reader and not
	// yet read.
	CountUnread(ctx context.Context, threadID, reader uuid.UUID) (int, error)
}
