package user

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/storage"
)

type userServiceImpl struct {
	user.UserRepository
	fileStorage storage.FileStorage
}

func NewUserService(userRepo user.UserRepository, fileStorage storage.FileStorage) user.UserService {
	return &userServiceImpl{
		UserRepository: userRepo,
		fileStorage:    fileStorage,
	}
}

// GetProfile implements user.UserService.
func (s *userServiceImpl) GetProfile(ctx context.Context, targetID string) (user.UserResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	if !actor.IsAdmin() && actor.UserID != targetID {
		return user.UserResponse{}, user.ErrNotProfileOwner
	}

	u, err := s.UserRepository.GetByID(ctx, targetID)
	if err != nil {
		return user.UserResponse{}, err
	}

	resp := user.ToResponse(u)

	docs, err := s.UserRepository.ListDocuments(ctx, targetID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to list documents: %w", err)
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, user.ToDocumentResponse(d))
	}

	return resp, nil
}

// ListUsers implements user.UserService.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToResponse(u))
	}
	return out, nil
}

// UpdateProfile implements user.UserService. Employees may patch their
// own personal and bank fields; employment fields need the admin role.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	if !actor.IsAdmin() {
		if actor.UserID != req.ID {
			return user.UserResponse{}, user.ErrNotProfileOwner
		}
		if req.HasAdminOnlyFields() {
			return user.UserResponse{}, user.ErrAdminOnlyField
		}
	}

	updated, err := s.UserRepository.UpdateProfile(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// UploadDocument implements user.UserService.
func (s *userServiceImpl) UploadDocument(ctx context.Context, targetID string, file io.Reader, filename string, docType string) (user.DocumentResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return user.DocumentResponse{}, err
	}

	if !actor.IsAdmin() && actor.UserID != targetID {
		return user.DocumentResponse{}, user.ErrNotProfileOwner
	}

	if _, err := s.UserRepository.GetByID(ctx, targetID); err != nil {
		return user.DocumentResponse{}, err
	}

	dt := user.DocumentType(docType)
	if dt != user.DocumentTypeResume {
		dt = user.DocumentTypeOther
	}

	ext := filepath.Ext(filename)
	storagePath := fmt.Sprintf("documents/%s/%d-%s%s",
		targetID, time.Now().Unix(), uuid.NewString()[:8], ext)

	url, err := s.fileStorage.Upload(ctx, file, storagePath, contentTypeForExt(ext))
	if err != nil {
		return user.DocumentResponse{}, fmt.Errorf("failed to upload document: %w", err)
	}

	doc, err := s.UserRepository.AddDocument(ctx, user.Document{
		UserID: targetID,
		Name:   filename,
		URL:    url,
		Type:   dt,
	})
	if err != nil {
		return user.DocumentResponse{}, err
	}

	return user.ToDocumentResponse(doc), nil
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
