package notification

import "context"

type NotificationService interface {
	ListMine(ctx context.Context) ([]NotificationResponse, error)
	// MarkRead requires the notification to be visible to the caller;
	// marking twice is a no-op.
	MarkRead(ctx context.Context, id string) error
	// Broadcast is admin only.
	Broadcast(ctx context.Context, req BroadcastRequest) (NotificationResponse, error)
}
