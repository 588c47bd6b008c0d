package user

import (
	"context"
	"io"
)

type UserService interface {
	// GetProfile returns a profile. Employees may only read their own;
	// admins may read anyone's.
	GetProfile(ctx context.Context, targetID string) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	// UpdateProfile merges the patch into the target user. Employment
	// fields require the admin role.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)
	UploadDocument(ctx context.Context, targetID string, file io.Reader, filename string, docType string) (DocumentResponse, error)
}
