package notification

import (
	"context"
)

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	// ListVisible returns notifications targeted at the user, broadcast
	// to everyone, or (for admins) addressed to the admin audience.
	ListVisible(ctx context.Context, userID string, isAdmin bool) ([]Notification, error)
	GetByID(ctx context.Context, id string) (Notification, error)
	// MarkRead records that userID has read the notification. The
	// first call sets read_at, later calls change nothing.
	MarkRead(ctx context.Context, id string, userID string) error
}
