package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/jwt"
)

// collidingUserRepo reports an employee code collision on the first
// failCreates calls to Create, then succeeds.
type collidingUserRepo struct {
	user.UserRepository
	failCreates int
	createCalls int
}

func (s *collidingUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *collidingUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	s.createCalls++
	if s.createCalls <= s.failCreates {
		return user.User{}, user.ErrEmployeeCodeExists
	}
	u.ID = "user-1"
	return u, nil
}

type noopRefreshTokenRepo struct {
	auth.RefreshTokenRepository
}

func (s *noopRefreshTokenRepo) Create(ctx context.Context, userID, token string, expiresAt int64) error {
	return nil
}

func TestRegisterAdmin_RetriesOnEmployeeCodeCollision(t *testing.T) {
	ctx := context.Background()
	repo := &collidingUserRepo{failCreates: 2}
	svc := NewAuthService(repo, &noopRefreshTokenRepo{}, jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp))

	resp, err := svc.RegisterAdmin(ctx, auth.RegisterAdminRequest{
		Name:     "Retry Admin",
		Email:    "retry@example.com",
		Password: "SecurePass123",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.createCalls)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRegisterAdmin_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := context.Background()
	repo := &collidingUserRepo{failCreates: 100}
	svc := NewAuthService(repo, &noopRefreshTokenRepo{}, jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp))

	_, err := svc.RegisterAdmin(ctx, auth.RegisterAdminRequest{
		Name:     "Unlucky Admin",
		Email:    "unlucky@example.com",
		Password: "SecurePass123",
	})
	require.ErrorIs(t, err, user.ErrEmployeeCodeExists)
	assert.Equal(t, employeeCodeAttempts, repo.createCalls)
}
