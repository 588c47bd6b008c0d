package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/notification"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

const notificationColumns = `id, audience, recipient_id, title, message, type, created_at`

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	err := row.Scan(
		&n.ID,
		&n.Audience,
		&n.RecipientID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.CreatedAt,
	)
	return n, err
}

// Create implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (audience, recipient_id, title, message, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + notificationColumns

	created, err := scanNotification(q.QueryRow(ctx, query,
		n.Audience, n.RecipientID, n.Title, n.Message, n.Type,
	))
	if err != nil {
		return notification.Notification{}, err
	}
	return created, nil
}

// ListVisible implements notification.NotificationRepository. Read
// state is joined in per viewer, so a broadcast stays unread for users
// who have not opened it.
func (r *notificationRepositoryImpl) ListVisible(ctx context.Context, userID string, isAdmin bool) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.audience, n.recipient_id, n.title, n.message, n.type, n.created_at,
		       nr.user_id IS NOT NULL, nr.read_at
		FROM notifications n
		LEFT JOIN notification_reads nr
		       ON nr.notification_id = n.id AND nr.user_id = $1
		WHERE n.audience = 'all'
		   OR (n.audience = 'user' AND n.recipient_id = $1)
		   OR (n.audience = 'admins' AND $2)
		ORDER BY n.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(
			&n.ID,
			&n.Audience,
			&n.RecipientID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.CreatedAt,
			&n.IsRead,
			&n.ReadAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// GetByID implements notification.NotificationRepository. The returned
// row carries no read state; that belongs to a viewer.
func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, err
	}
	return n, nil
}

// MarkRead implements notification.NotificationRepository. The insert
// conflicts on repeat reads and keeps the first read_at.
func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO notification_reads (notification_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (notification_id, user_id) DO NOTHING
	`, id, userID)
	return err
}
