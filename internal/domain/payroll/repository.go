package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	Create(ctx context.Context, p PayrollRecord) (PayrollRecord, error)
	ListByUser(ctx context.Context, userID string) ([]PayrollRecord, error)
	List(ctx context.Context) ([]PayrollRecord, error)
	// MarkPaid is guarded on status='pending'; paying twice surfaces as
	// ErrPayrollAlreadyPaid.
	MarkPaid(ctx context.Context, id string, paymentDate time.Time) (PayrollRecord, error)
}
