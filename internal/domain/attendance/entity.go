package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

// Attendance is one work day for one user. At most one record exists
// per (UserID, Date); the database enforces it.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Status    Status
	WorkHours *float64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	UserName *string
}
