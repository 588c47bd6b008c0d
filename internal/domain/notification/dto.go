package notification

import (
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

// BroadcastRequest sends a system-wide notification to all users.
type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (r *BroadcastRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(TypeInfo), string(TypeSuccess), string(TypeWarning), string(TypeError)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: info, success, warning, error",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// ToResponse maps a Notification entity to its API shape.
func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
