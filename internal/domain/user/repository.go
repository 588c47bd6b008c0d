package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	// GetByIdentifier matches a user by email or employee code,
	// case-insensitive.
	GetByIdentifier(ctx context.Context, identifier string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (User, error)
	// UpdatePassword stores a new hash and clears the temp-password flag.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	AddDocument(ctx context.Context, doc Document) (Document, error)
	ListDocuments(ctx context.Context, userID string) ([]Document, error)
}
