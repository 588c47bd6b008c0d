package user

import (
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

// BankDetailsResponse represents bank details in API responses
type BankDetailsResponse struct {
	AccountNumber *string `json:"account_number,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	IFSCCode      *string `json:"ifsc_code,omitempty"`
	PANNumber     *string `json:"pan_number,omitempty"`
}

// UserResponse represents user data in API responses. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID             string               `json:"id"`
	EmployeeCode   string               `json:"employee_code"`
	Email          string               `json:"email"`
	Role           string               `json:"role"`
	IsTempPassword bool                 `json:"is_temp_password"`
	Name           string               `json:"name"`
	Position       *string              `json:"position,omitempty"`
	Department     *string              `json:"department,omitempty"`
	Phone          *string              `json:"phone,omitempty"`
	Address        *string              `json:"address,omitempty"`
	JoinDate       *string              `json:"join_date,omitempty"`
	Salary         *float64             `json:"salary,omitempty"`
	DateOfBirth    *string              `json:"date_of_birth,omitempty"`
	Nationality    *string              `json:"nationality,omitempty"`
	Gender         *string              `json:"gender,omitempty"`
	MaritalStatus  *string              `json:"marital_status,omitempty"`
	BankDetails    *BankDetailsResponse `json:"bank_details,omitempty"`
	Documents      []DocumentResponse   `json:"documents,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// DocumentResponse represents an uploaded profile document
type DocumentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	UploadedAt string `json:"uploaded_at"`
}

// ToResponse maps a User entity to its API shape.
func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		EmployeeCode:   u.EmployeeCode,
		Email:          u.Email,
		Role:           string(u.Role),
		IsTempPassword: u.IsTempPassword,
		Name:           u.Name,
		Position:       u.Position,
		Department:     u.Department,
		Phone:          u.Phone,
		Address:        u.Address,
		Salary:         u.Salary,
		Nationality:    u.Nationality,
		Gender:         u.Gender,
		MaritalStatus:  u.MaritalStatus,
		CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.JoinDate != nil {
		d := u.JoinDate.Format("2006-01-02")
		resp.JoinDate = &d
	}
	if u.DateOfBirth != nil {
		d := u.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &d
	}
	if u.BankAccountNumber != nil || u.BankName != nil || u.BankIFSCCode != nil || u.BankPANNumber != nil {
		resp.BankDetails = &BankDetailsResponse{
			AccountNumber: u.BankAccountNumber,
			BankName:      u.BankName,
			IFSCCode:      u.BankIFSCCode,
			PANNumber:     u.BankPANNumber,
		}
	}
	return resp
}

// ToDocumentResponse maps a Document entity to its API shape.
func ToDocumentResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		Name:       d.Name,
		URL:        d.URL,
		Type:       string(d.Type),
		UploadedAt: d.UploadedAt.Format("2006-01-02 15:04:05"),
	}
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left untouched. Position, Department, Salary and JoinDate are
// restricted to admins.
type UpdateProfileRequest struct {
	ID string `json:"-"`

	Name          *string  `json:"name,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Address       *string  `json:"address,omitempty"`
	DateOfBirth   *string  `json:"date_of_birth,omitempty"`
	Nationality   *string  `json:"nationality,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	MaritalStatus *string  `json:"marital_status,omitempty"`
	AccountNumber *string  `json:"account_number,omitempty"`
	BankName      *string  `json:"bank_name,omitempty"`
	IFSCCode      *string  `json:"ifsc_code,omitempty"`
	PANNumber     *string  `json:"pan_number,omitempty"`
	Position      *string  `json:"position,omitempty"`
	Department    *string  `json:"department,omitempty"`
	Salary        *float64 `json:"salary,omitempty"`
	JoinDate      *string  `json:"join_date,omitempty"`
}

// HasAdminOnlyFields reports whether the patch touches employment
// fields that only admins may change.
func (r *UpdateProfileRequest) HasAdminOnlyFields() bool {
	return r.Position != nil || r.Department != nil || r.Salary != nil || r.JoinDate != nil
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"male", "female", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "invalid gender",
		})
	}

	if r.MaritalStatus != nil && !validator.IsInSlice(*r.MaritalStatus, []string{"single", "married", "divorced", "widowed"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "marital_status",
			Message: "invalid marital status",
		})
	}

	if r.Salary != nil && *r.Salary < 0 {
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
