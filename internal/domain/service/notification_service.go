package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificationService defines the contract for pushing user-facing
// notifications. Implementations may be absent (nil) when push delivery is
// not configured; callers must tolerate that.
type NotificationService interface {
	// NotifyUser sends a notification to a single user's topic.
	NotifyUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error
}
