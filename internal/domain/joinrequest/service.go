package joinrequest

import "context"

type JoinRequestService interface {
	// Submit is unauthenticated; it files the request and notifies
	// admins in the same transaction.
	Submit(ctx context.Context, req SubmitRequest) (JoinRequestResponse, error)
	// List is admin only.
	List(ctx context.Context) ([]JoinRequestResponse, error)
	// Approve converts the request into a user with generated
	// credentials and a forced password change, then deletes it. All in
	// one transaction.
	Approve(ctx context.Context, req ApproveRequest) (ApprovalResponse, error)
	// Reject deletes the request; no user is created.
	Reject(ctx context.Context, id string) error
}
