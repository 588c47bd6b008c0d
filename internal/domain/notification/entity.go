package notification

import "time"

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Audience selects who can see a notification.
type Audience string

const (
	AudienceUser   Audience = "user"   // A single recipient
	AudienceAdmins Audience = "admins" // Every admin
	AudienceAll    Audience = "all"    // Everyone
)

// Notification is an in-app message. RecipientID is set only when
// Audience is AudienceUser. Notifications are never deleted. IsRead
// and ReadAt are per viewer, filled in by ListVisible, and only move
// false -> true.
type Notification struct {
	ID          string
	Audience    Audience
	RecipientID *string
	Title       string
	Message     string
	Type        Type
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
