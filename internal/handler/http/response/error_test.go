package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/attendance"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"checkout without open session", attendance.ErrNoOpenCheckIn, http.StatusNotFound},
		{"duplicate check-in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown user", user.ErrUserNotFound, http.StatusNotFound},
		{"admin privilege required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"unmapped error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp Response
			err := json.NewDecoder(w.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.False(t, resp.Success)
			assert.NotNil(t, resp.Error)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, validator.ValidationErrors{
		{Field: "email", Message: "email is invalid"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp Response
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, "email is invalid", resp.Error.Details["email"])
}
