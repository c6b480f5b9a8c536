package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// AddStaffInput defines the data for a new staff account created by an
// owner or admin of a supplier company.
type AddStaffInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     entity.Role // admin or sales
}

// MemberUsecase defines the interface for supplier staff management.
type MemberUsecase interface {
	// AddStaff creates an admin or sales account inside the actor's company.
	AddStaff(ctx context.Context, actor *entity.User, input *AddStaffInput) (*entity.User, error)

	// ListStaff returns the actor's company staff.
	ListStaff(ctx context.Context, actor *entity.User) ([]*entity.User, error)

	// DeactivateStaff disables a staff account without deleting it.
	DeactivateStaff(ctx context.Context, actor *entity.User, staffID uuid.UUID) error
}
