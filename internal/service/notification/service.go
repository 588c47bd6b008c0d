package notification

import (
	"context"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/notification"
)

type notificationServiceImpl struct {
	notification.NotificationRepository
}

func NewNotificationService(notificationRepo notification.NotificationRepository) notification.NotificationService {
	return &notificationServiceImpl{NotificationRepository: notificationRepo}
}

// ListMine implements notification.NotificationService.
func (s *notificationServiceImpl) ListMine(ctx context.Context) ([]notification.NotificationResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.NotificationRepository.ListVisible(ctx, actor.UserID, actor.IsAdmin())
	if err != nil {
		return nil, err
	}

	out := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, notification.ToResponse(n))
	}
	return out, nil
}

// MarkRead implements notification.NotificationService. Reading is
// one-way; calling this on an already read notification changes
// nothing.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	n, err := s.NotificationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !visibleTo(n, actor) {
		return notification.ErrNotRecipient
	}

	return s.NotificationRepository.MarkRead(ctx, id, actor.UserID)
}

func visibleTo(n notification.Notification, actor auth.Actor) bool {
	switch n.Audience {
	case notification.AudienceAll:
		return true
	case notification.AudienceAdmins:
		return actor.IsAdmin()
	case notification.AudienceUser:
		return n.RecipientID != nil && *n.RecipientID == actor.UserID
	}
	return false
}

// Broadcast implements notification.NotificationService.
func (s *notificationServiceImpl) Broadcast(ctx context.Context, req notification.BroadcastRequest) (notification.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.NotificationResponse{}, err
	}

	created, err := s.NotificationRepository.Create(ctx, notification.Notification{
		Audience: notification.AudienceAll,
		Title:    req.Title,
		Message:  req.Message,
		Type:     notification.Type(req.Type),
	})
	if err != nil {
		return notification.NotificationResponse{}, err
	}
	return notification.ToResponse(created), nil
}
