package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshToken is the persisted session record. Only the SHA-256 hash of the
// token string is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// RefreshTokenRepository defines operations for session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *RefreshToken) error

	// FindByHash retrieves a token record by its hash.
	FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)

	// Revoke marks a token record as revoked.
	Revoke(ctx context.Context, id uuid.UUID) error

	// RevokeAllForUser revokes every token of a user.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes token records past their expiry.
	DeleteExpired(ctx context.Context, now time.Time) error
}
