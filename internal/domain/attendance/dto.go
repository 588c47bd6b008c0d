package attendance

import (
	"time"

	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

// AttendanceResponse represents an attendance record in API responses
type AttendanceResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	UserName  *string  `json:"user_name,omitempty"`
	Date      string   `json:"date"`
	CheckIn   *string  `json:"check_in,omitempty"`
	CheckOut  *string  `json:"check_out,omitempty"`
	Status    string   `json:"status"`
	WorkHours *float64 `json:"work_hours,omitempty"`
}

func timePtrToClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

// ToResponse maps an Attendance entity to its API shape.
func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		UserName:  a.UserName,
		Date:      a.Date.Format("2006-01-02"),
		CheckIn:   timePtrToClock(a.CheckIn),
		CheckOut:  timePtrToClock(a.CheckOut),
		Status:    string(a.Status),
		WorkHours: a.WorkHours,
	}
}

// ListFilter narrows the admin attendance listing.
type ListFilter struct {
	UserID *string
	Date   *string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
