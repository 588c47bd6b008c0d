package joinrequest

import (
	"context"
)

type JoinRequestRepository interface {
	Create(ctx context.Context, jr JoinRequest) (JoinRequest, error)
	GetByID(ctx context.Context, id string) (JoinRequest, error)
	List(ctx context.Context) ([]JoinRequest, error)
	Delete(ctx context.Context, id string) error
}
