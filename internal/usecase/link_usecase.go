package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// LinkUsecase defines the interface for partnership link operations. Every
// method receives the acting user so permission and scope checks happen here,
// not in handlers.
type LinkUsecase interface {
	// RequestLink files a pending link request from a consumer to a supplier.
	RequestLink(ctx context.Context, actor *entity.User, supplierID uuid.UUID) (*entity.Link, error)

	// RequestLinkFromInvite resolves a scanned invite QR payload and files a
	// link request against the encoded supplier.
	RequestLinkFromInvite(ctx context.Context, actor *entity.User, qrData string) (*entity.Link, error)

	// InviteQR renders the supplier's invite QR code as PNG bytes.
	InviteQR(ctx context.Context, actor *entity.User) ([]byte, error)

	// Approve moves a pending link to approved.
	Approve(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error)

	// Decline moves a pending link to declined.
	Decline(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error)

	// Block suspends an approved link.
	Block(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error)

	// Unblock restores a blocked link to approved.
	Unblock(ctx context.Context, actor *entity.User, linkID uuid.UUID) (*entity.Link, error)

	// List returns the links visible to the actor: the company's links for
	// supplier staff, the consumer's own links otherwise.
	List(ctx context.Context, actor *entity.User) ([]*entity.Link, error)
}
