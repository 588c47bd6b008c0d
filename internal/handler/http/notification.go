package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/notification"
	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Broadcast(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// ListMine implements NotificationHandler.
func (h *NotificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	items, err := h.notificationService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationService.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// Broadcast implements NotificationHandler.
func (h *NotificationHandlerImpl) Broadcast(w http.ResponseWriter, r *http.Request) {
	var broadcastReq notification.BroadcastRequest

	if err := json.NewDecoder(r.Body).Decode(&broadcastReq); err != nil {
		slog.Error("Broadcast decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.notificationService.Broadcast(r.Context(), broadcastReq)
	if err != nil {
		slog.Error("Broadcast service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Notification broadcast", created)
}
