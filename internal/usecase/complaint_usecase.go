package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// FileComplaintInput defines the data for a new complaint.
type FileComplaintInput struct {
	OrderID     uuid.UUID
	Subject     string
	Description string
}

// ResolveComplaintInput carries the resolution text.
type ResolveComplaintInput struct {
	ComplaintID uuid.UUID
	Resolution  string
}

// ComplaintUsecase defines the interface for complaint operations.
type ComplaintUsecase interface {
	// File creates a complaint against one of the consumer's own orders.
	File(ctx context.Context, actor *entity.User, input *FileComplaintInput) (*entity.Complaint, error)

	// Start moves an open complaint into progress, assigning the actor.
	Start(ctx context.Context, actor *entity.User, complaintID uuid.UUID) (*entity.Complaint, error)

	// Escalate raises a complaint to owner/admin attention.
	Escalate(ctx context.Context, actor *entity.User, complaintID uuid.UUID) (*entity.Complaint, error)

	// Resolve records a resolution. Escalated complaints require owner/admin.
	Resolve(ctx context.Context, actor *entity.User, input *ResolveComplaintInput) (*entity.Complaint, error)

	// Close finishes a resolved complaint.
	Close(ctx context.Context, actor *entity.User, complaintID uuid.UUID) (*entity.Complaint, error)

	// List returns the complaints visible to the actor.
	List(ctx context.Context, actor *entity.User) ([]*entity.Complaint, error)
}
