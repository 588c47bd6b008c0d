package payroll

import "context"

type PayrollService interface {
	// Create is admin only.
	Create(ctx context.Context, req CreateRequest) (PayrollResponse, error)
	ListMine(ctx context.Context) ([]PayrollResponse, error)
	// List is admin only.
	List(ctx context.Context) ([]PayrollResponse, error)
	// MarkPaid is admin only.
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)
}
