package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/response"
)

const maxDocumentSize = 10 << 20 // 10 MiB

type UserHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
	UpdateByID(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// GetMe implements UserHandler.
func (u *UserHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := u.userService.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// GetByID implements UserHandler.
func (u *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	profile, err := u.userService.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// List implements UserHandler.
func (u *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := u.userService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// UpdateMe implements UserHandler.
func (u *UserHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	u.update(w, r, actor.UserID)
}

// UpdateByID implements UserHandler.
func (u *UserHandlerImpl) UpdateByID(w http.ResponseWriter, r *http.Request) {
	u.update(w, r, chi.URLParam(r, "id"))
}

func (u *UserHandlerImpl) update(w http.ResponseWriter, r *http.Request, targetID string) {
	var updateReq user.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = targetID

	updated, err := u.userService.UpdateProfile(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// UploadDocument implements UserHandler.
func (u *UserHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file", nil)
		return
	}
	defer file.Close()

	docType := r.FormValue("type")

	doc, err := u.userService.UploadDocument(r.Context(), chi.URLParam(r, "id"), file, header.Filename, docType)
	if err != nil {
		slog.Error("UploadDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Document uploaded successfully", doc)
}
