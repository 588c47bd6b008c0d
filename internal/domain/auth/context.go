package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
)

// Actor is the authenticated caller extracted from access-token claims.
// It carries only the user id and role; services re-read the canonical
// user record when they need more.
type Actor struct {
	UserID string
	Email  string
	Role   user.Role
}

// IsAdmin checks if the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// ActorFromContext extracts the authenticated actor from jwtauth claims.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, ErrNotAuthenticated
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Actor{}, ErrNotAuthenticated
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Actor{}, ErrNotAuthenticated
	}

	email, _ := claims["email"].(string)

	return Actor{
		UserID: userID,
		Email:  email,
		Role:   user.Role(role),
	}, nil
}
