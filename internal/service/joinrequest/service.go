package joinrequest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/joinrequest"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/notification"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/credentials"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/email"
	"github.com/nimbushr/nimbus-backend-go/internal/repository/postgresql"
)

const (
	tempPasswordLength = 12

	// Employee codes come from a small space; regenerate on a unique
	// constraint hit instead of failing the approval.
	employeeCodeAttempts = 5
)

type joinRequestServiceImpl struct {
	db *database.DB
	joinrequest.JoinRequestRepository
	userRepo         user.UserRepository
	notificationRepo notification.NotificationRepository
	emailService     email.EmailService
}

func NewJoinRequestService(
	db *database.DB,
	joinRequestRepo joinrequest.JoinRequestRepository,
	userRepo user.UserRepository,
	notificationRepo notification.NotificationRepository,
	emailService email.EmailService,
) joinrequest.JoinRequestService {
	return &joinRequestServiceImpl{
		db:                    db,
		JoinRequestRepository: joinRequestRepo,
		userRepo:              userRepo,
		notificationRepo:      notificationRepo,
		emailService:          emailService,
	}
}

// Submit implements joinrequest.JoinRequestService. No account exists
// until an admin approves; the request and the admin notification
// commit together.
func (s *joinRequestServiceImpl) Submit(ctx context.Context, req joinrequest.SubmitRequest) (joinrequest.JoinRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return joinrequest.JoinRequestResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return joinrequest.JoinRequestResponse{}, err
	}
	if exists {
		return joinrequest.JoinRequestResponse{}, user.ErrEmailExists
	}

	var created joinrequest.JoinRequest
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.JoinRequestRepository.Create(txCtx, joinrequest.JoinRequest{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			return fmt.Errorf("failed to create join request: %w", err)
		}

		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			Audience: notification.AudienceAdmins,
			Title:    "New join request",
			Message:  fmt.Sprintf("%s (%s) requested to join", req.Name, req.Email),
			Type:     notification.TypeInfo,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return joinrequest.JoinRequestResponse{}, err
	}

	return joinrequest.ToResponse(created), nil
}

// List implements joinrequest.JoinRequestService.
func (s *joinRequestServiceImpl) List(ctx context.Context) ([]joinrequest.JoinRequestResponse, error) {
	requests, err := s.JoinRequestRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]joinrequest.JoinRequestResponse, 0, len(requests))
	for _, jr := range requests {
		out = append(out, joinrequest.ToResponse(jr))
	}
	return out, nil
}

// Approve implements joinrequest.JoinRequestService. User creation,
// request deletion and the welcome notification commit in one
// transaction; the credentials email goes out afterwards and never
// rolls the approval back.
func (s *joinRequestServiceImpl) Approve(ctx context.Context, req joinrequest.ApproveRequest) (joinrequest.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return joinrequest.ApprovalResponse{}, err
	}

	jr, err := s.JoinRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return joinrequest.ApprovalResponse{}, err
	}

	tempPassword, err := credentials.NewTempPassword(tempPasswordLength)
	if err != nil {
		return joinrequest.ApprovalResponse{}, fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return joinrequest.ApprovalResponse{}, err
	}

	joinDate := time.Now()

	// The generated code can collide with an existing employee; the
	// unique constraint aborts the transaction and we retry with a
	// fresh draw.
	var created user.User
	var employeeCode string
	for attempt := 0; attempt < employeeCodeAttempts; attempt++ {
		employeeCode, err = credentials.NewEmployeeCode()
		if err != nil {
			return joinrequest.ApprovalResponse{}, fmt.Errorf("failed to generate employee code: %w", err)
		}

		err = s.approveTx(ctx, jr, req, employeeCode, string(hash), joinDate, &created)
		if err == nil {
			break
		}
		if errors.Is(err, user.ErrEmployeeCodeExists) {
			continue
		}
		return joinrequest.ApprovalResponse{}, err
	}
	if created.ID == "" {
		return joinrequest.ApprovalResponse{}, user.ErrEmployeeCodeExists
	}

	if err := s.emailService.SendCredentials(created.Email, created.Name, employeeCode, tempPassword); err != nil {
		slog.Error("failed to send credentials email", "user_id", created.ID, "error", err)
	}

	slog.Info("join request approved", "user_id", created.ID, "employee_code", employeeCode)

	return joinrequest.ApprovalResponse{
		User:         user.ToResponse(created),
		EmployeeCode: employeeCode,
		TempPassword: tempPassword,
	}, nil
}

func (s *joinRequestServiceImpl) approveTx(
	ctx context.Context,
	jr joinrequest.JoinRequest,
	req joinrequest.ApproveRequest,
	employeeCode string,
	passwordHash string,
	joinDate time.Time,
	created *user.User,
) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		u, err := s.userRepo.Create(txCtx, user.User{
			EmployeeCode:   employeeCode,
			Email:          jr.Email,
			PasswordHash:   passwordHash,
			Role:           user.RoleEmployee,
			IsTempPassword: true,
			Name:           jr.Name,
			Position:       &req.Position,
			Department:     &req.Department,
			Salary:         &req.Salary,
			JoinDate:       &joinDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		*created = u

		if err := s.JoinRequestRepository.Delete(txCtx, req.ID); err != nil {
			return fmt.Errorf("failed to delete join request: %w", err)
		}

		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			Audience:    notification.AudienceUser,
			RecipientID: &u.ID,
			Title:       "Welcome aboard",
			Message:     fmt.Sprintf("Your account is ready. Your employee code is %s.", employeeCode),
			Type:        notification.TypeSuccess,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
}

// Reject implements joinrequest.JoinRequestService.
func (s *joinRequestServiceImpl) Reject(ctx context.Context, id string) error {
	if _, err := s.JoinRequestRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.JoinRequestRepository.Delete(ctx, id)
}
