package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, userID, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, to_timestamp($3))
	`, userID, token, expiresAt)
	return err
}

// IsRevoked implements auth.RefreshTokenRepository. A token that was
// never stored counts as revoked.
func (r *refreshTokenRepositoryImpl) IsRevoked(ctx context.Context, token string) (string, bool, error) {
	q := GetQuerier(ctx, r.db)

	var userID string
	var revoked bool
	err := q.QueryRow(ctx, `
		SELECT user_id, revoked OR expires_at < NOW()
		FROM refresh_tokens
		WHERE token = $1
	`, token).Scan(&userID, &revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", true, nil
		}
		return "", true, err
	}
	return userID, revoked, nil
}

// Revoke implements auth.RefreshTokenRepository. Revoking an unknown
// or already revoked token is a no-op.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1
	`, token)
	return err
}
