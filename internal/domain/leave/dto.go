package leave

import (
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

// ApplyRequest creates a pending leave request for the caller.
type ApplyRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TypePaid), string(TypeSick), string(TypeUnpaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: paid, sick, unpaid",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecideRequest transitions a pending request to approved or rejected.
// The comment is optional either way.
type DecideRequest struct {
	ID      string  `json:"-"`
	Status  string  `json:"status"`
	Comment *string `json:"comment,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveResponse represents a leave request in API responses
type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     *string `json:"user_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment,omitempty"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse maps a LeaveRequest entity to its API shape.
func ToResponse(lr LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:           lr.ID,
		UserID:       lr.UserID,
		UserName:     lr.UserName,
		Type:         string(lr.Type),
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Reason:       lr.Reason,
		Status:       string(lr.Status),
		AdminComment: lr.AdminComment,
		DecidedBy:    lr.DecidedBy,
		CreatedAt:    lr.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if lr.DecidedAt != nil {
		s := lr.DecidedAt.Format("2006-01-02 15:04:05")
		resp.DecidedAt = &s
	}
	return resp
}
