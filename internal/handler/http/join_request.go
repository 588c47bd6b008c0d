package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/joinrequest"
	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/response"
)

type JoinRequestHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type JoinRequestHandlerImpl struct {
	joinRequestService joinrequest.JoinRequestService
}

func NewJoinRequestHandler(joinRequestService joinrequest.JoinRequestService) JoinRequestHandler {
	return &JoinRequestHandlerImpl{joinRequestService: joinRequestService}
}

// Submit implements JoinRequestHandler. This is the only
// unauthenticated write in the API.
func (h *JoinRequestHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq joinrequest.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.joinRequestService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Join request submitted", created)
}

// List implements JoinRequestHandler.
func (h *JoinRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.joinRequestService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Approve implements JoinRequestHandler.
func (h *JoinRequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var approveReq joinrequest.ApproveRequest

	if err := json.NewDecoder(r.Body).Decode(&approveReq); err != nil {
		slog.Error("Approve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	approveReq.ID = chi.URLParam(r, "id")

	approval, err := h.joinRequestService.Approve(r.Context(), approveReq)
	if err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Join request approved", approval)
}

// Reject implements JoinRequestHandler.
func (h *JoinRequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	if err := h.joinRequestService.Reject(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Join request rejected", nil)
}
