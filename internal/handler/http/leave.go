package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/leave"
	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var applyReq leave.ApplyRequest

	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Apply(r.Context(), applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decideReq leave.DecideRequest

	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decideReq.ID = chi.URLParam(r, "id")

	decided, err := h.leaveService.Decide(r.Context(), decideReq)
	if err != nil {
		slog.Error("Decide service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, decided)
}
