package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-123", "admin@example.com", user.RoleAdmin, false)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-123", userID)
	role, _ := token.Get("role")
	assert.Equal(t, "admin", role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
	_, present := token.Get("must_change_password")
	assert.False(t, present)
}

func TestGenerateAccessToken_TempPasswordClaim(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken("user-123", "temp@example.com", user.RoleEmployee, true)
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	mustChange, _ := token.Get("must_change_password")
	assert.Equal(t, true, mustChange)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateRefreshToken("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Add(23*time.Hour).Unix())

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	tokenType, _ := token.Get("type")
	assert.Equal(t, "refresh", tokenType)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	other := NewJWTService("a-completely-different-key", "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken("user-123", "a@b.cd", user.RoleEmployee, false)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(other.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestInvalidExpirationFormat(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-123", "a@b.cd", user.RoleEmployee, false)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	exp := time.Now().Add(24 * time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("some-token", exp)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}
