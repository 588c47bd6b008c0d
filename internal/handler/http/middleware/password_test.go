package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/nimbus-backend-go/internal/pkg/jwt"
)

func gateRequest(t *testing.T, claims map[string]interface{}) *http.Request {
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	tok, _, err := jwtSvc.JWTAuth().Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), tok, nil))
}

func TestPermanentPasswordOnly_BlocksTempPasswordSession(t *testing.T) {
	nextCalled := false
	handler := PermanentPasswordOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := gateRequest(t, map[string]interface{}{
		"user_id":              "user-123",
		"role":                 "employee",
		"type":                 "access",
		"must_change_password": true,
		"exp":                  time.Now().Add(time.Hour).Unix(),
	})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, nextCalled)
}

func TestPermanentPasswordOnly_AdmitsNormalSession(t *testing.T) {
	nextCalled := false
	handler := PermanentPasswordOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := gateRequest(t, map[string]interface{}{
		"user_id": "user-123",
		"role":    "employee",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, nextCalled)
}
