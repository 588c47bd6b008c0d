package joinrequest

import (
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

// SubmitRequest is the unauthenticated employee registration.
type SubmitRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApproveRequest supplies the employment details for the new user.
type ApproveRequest struct {
	ID         string  `json:"-"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// JoinRequestResponse represents a pending join request in API responses
type JoinRequestResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	RequestDate string `json:"request_date"`
}

// ToResponse maps a JoinRequest entity to its API shape.
func ToResponse(jr JoinRequest) JoinRequestResponse {
	return JoinRequestResponse{
		ID:          jr.ID,
		Name:        jr.Name,
		Email:       jr.Email,
		Role:        string(user.RoleEmployee),
		RequestDate: jr.RequestDate.Format("2006-01-02"),
	}
}

// ApprovalResponse carries the generated credentials. This is the only
// time the temporary password is visible; only its hash is stored.
type ApprovalResponse struct {
	User         user.UserResponse `json:"user"`
	EmployeeCode string            `json:"employee_code"`
	TempPassword string            `json:"temp_password"`
}
