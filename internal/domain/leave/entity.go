package leave

import "time"

type Type string

const (
	TypePaid   Type = "paid"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest is an employee's request for time off. Approved and
// rejected are terminal states.
type LeaveRequest struct {
	ID           string
	UserID       string
	Type         Type
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	AdminComment *string
	DecidedBy    *string
	DecidedAt    *time.Time
	CreatedAt    time.Time

	// Join
	UserName *string
}
