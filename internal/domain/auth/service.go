package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	// Logout revokes the refresh token; revoking twice is a no-op.
	Logout(ctx context.Context, refreshToken string) error
	// ChangePassword rehashes the caller's credential and clears the
	// temp-password flag.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked server-side.
type RefreshTokenRepository interface {
	Create(ctx context.Context, userID, token string, expiresAt int64) error
	// IsRevoked returns the owning user id alongside the revocation
	// state; unknown tokens count as revoked.
	IsRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	Revoke(ctx context.Context, token string) error
}
