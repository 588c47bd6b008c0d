package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	// Decide flips a pending request to approved/rejected. The update
	// is guarded on status='pending': a second decision matches zero
	// rows and surfaces as ErrLeaveAlreadyProcessed, never as a silent
	// overwrite.
	Decide(ctx context.Context, id string, status Status, comment *string, decidedBy string, decidedAt time.Time) (LeaveRequest, error)
}
