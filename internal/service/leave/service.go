package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/leave"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/notification"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
	"github.com/nimbushr/nimbus-backend-go/internal/repository/postgresql"
)

type leaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	notificationRepo notification.NotificationRepository
	userRepo         user.UserRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	notificationRepo notification.NotificationRepository,
	userRepo user.UserRepository,
) leave.LeaveService {
	return &leaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
		notificationRepo:       notificationRepo,
		userRepo:               userRepo,
	}
}

// Apply implements leave.LeaveService. The request row and the admin
// notification commit in one transaction.
func (s *leaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	applicant, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.LeaveRequestRepository.Create(txCtx, leave.LeaveRequest{
			UserID:    actor.UserID,
			Type:      leave.Type(req.Type),
			StartDate: startDate,
			EndDate:   endDate,
			Reason:    req.Reason,
			Status:    leave.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}

		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			Audience: notification.AudienceAdmins,
			Title:    "New leave request",
			Message:  fmt.Sprintf("%s requested %s leave from %s to %s", applicant.Name, req.Type, req.StartDate, req.EndDate),
			Type:     notification.TypeInfo,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *leaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// List implements leave.LeaveService.
func (s *leaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	out := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, leave.ToResponse(lr))
	}
	return out
}

// Decide implements leave.LeaveService. The guarded update and the
// requester notification commit together; losing a decision race
// surfaces as already-processed beneath.
func (s *leaveServiceImpl) Decide(ctx context.Context, req leave.DecideRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	var decided leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		decided, err = s.LeaveRequestRepository.Decide(txCtx,
			req.ID, leave.Status(req.Status), req.Comment, actor.UserID, time.Now())
		if err != nil {
			return err
		}

		notifType := notification.TypeSuccess
		if decided.Status == leave.StatusRejected {
			notifType = notification.TypeWarning
		}

		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			Audience:    notification.AudienceUser,
			RecipientID: &decided.UserID,
			Title:       fmt.Sprintf("Leave request %s", decided.Status),
			Message: fmt.Sprintf("Your %s leave from %s to %s has been %s",
				decided.Type,
				decided.StartDate.Format("2006-01-02"),
				decided.EndDate.Format("2006-01-02"),
				decided.Status),
			Type: notifType,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(decided), nil
}
