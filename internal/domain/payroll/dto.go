package payroll

import (
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

// CreateRequest adds a payroll record for a user. The net salary is
// derived from the three components.
type CreateRequest struct {
	UserID      string  `json:"user_id"`
	Month       string  `json:"month"`
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
}

// NetSalary computes basic + allowances - deductions.
func (r *CreateRequest) NetSalary() float64 {
	return r.BasicSalary + r.Allowances - r.Deductions
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if r.Allowances < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}

	if r.Deductions < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PayrollResponse represents a payroll record in API responses
type PayrollResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	Month       string  `json:"month"`
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"net_salary"`
	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

// ToResponse maps a PayrollRecord entity to its API shape.
func ToResponse(p PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		UserName:    p.UserName,
		Month:       p.Month,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
		Status:      string(p.Status),
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	return resp
}
