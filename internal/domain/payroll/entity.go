package payroll

import "time"

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

// PayrollRecord is one user's pay for one month. NetSalary is always
// basic + allowances - deductions; it is computed server-side and never
// accepted from a client.
type PayrollRecord struct {
	ID          string
	UserID      string
	Month       string // YYYY-MM
	BasicSalary float64
	Allowances  float64
	Deductions  float64
	NetSalary   float64
	Status      Status
	PaymentDate *time.Time
	CreatedAt   time.Time

	// Join
	UserName *string
}
