package response

import (
	"errors"
	"net/http"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/attendance"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/joinrequest"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/leave"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/notification"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/payroll"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, "Not authenticated")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrPasswordChangeRequired):
		Forbidden(w, "Password change required before using the API")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrNotProfileOwner):
		Forbidden(w, "Profile belongs to another user")
	case errors.Is(err, user.ErrAdminOnlyField):
		Forbidden(w, "Field is editable by admins only")
	case errors.Is(err, user.ErrDocumentNotFound):
		NotFound(w, "Document not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoOpenCheckIn):
		NotFound(w, "No open check-in for today")
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out must be after check-in", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyPaid):
		Conflict(w, "Payroll record already paid")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification belongs to another user")

	// Join request domain errors
	case errors.Is(err, joinrequest.ErrJoinRequestNotFound):
		NotFound(w, "Join request not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
