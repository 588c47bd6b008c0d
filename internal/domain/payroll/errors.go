package payroll

import "errors"

var (
	ErrPayrollNotFound    = errors.New("payroll record not found")
	ErrPayrollAlreadyPaid = errors.New("payroll record already paid")
)
