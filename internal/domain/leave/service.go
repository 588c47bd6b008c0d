package leave

import "context"

type LeaveService interface {
	// Apply creates a pending request for the caller and notifies
	// admins in the same transaction.
	Apply(ctx context.Context, req ApplyRequest) (LeaveResponse, error)
	ListMine(ctx context.Context) ([]LeaveResponse, error)
	List(ctx context.Context) ([]LeaveResponse, error)
	// Decide approves or rejects a pending request and notifies the
	// requester; decision and notification commit together.
	Decide(ctx context.Context, req DecideRequest) (LeaveResponse, error)
}
