package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/response"
)

// PermanentPasswordOnly blocks tokens issued against a temporary
// password. Such a session only reaches the change-password route,
// which is mounted outside this middleware.
func PermanentPasswordOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrNotAuthenticated)
			return
		}

		if mustChange, ok := claims["must_change_password"].(bool); ok && mustChange {
			response.HandleError(w, auth.ErrPasswordChangeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
