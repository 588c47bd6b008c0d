package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/notification"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/payroll"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
	"github.com/nimbushr/nimbus-backend-go/internal/repository/postgresql"
)

type payrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	notificationRepo notification.NotificationRepository
	userRepo         user.UserRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	notificationRepo notification.NotificationRepository,
	userRepo user.UserRepository,
) payroll.PayrollService {
	return &payrollServiceImpl{
		db:                db,
		PayrollRepository: payrollRepo,
		notificationRepo:  notificationRepo,
		userRepo:          userRepo,
	}
}

// Create implements payroll.PayrollService. The net salary is derived
// from the components here; a client-supplied value is never read.
func (s *payrollServiceImpl) Create(ctx context.Context, req payroll.CreateRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var created payroll.PayrollRecord
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.PayrollRepository.Create(txCtx, payroll.PayrollRecord{
			UserID:      req.UserID,
			Month:       req.Month,
			BasicSalary: req.BasicSalary,
			Allowances:  req.Allowances,
			Deductions:  req.Deductions,
			NetSalary:   req.NetSalary(),
			Status:      payroll.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create payroll record: %w", err)
		}

		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			Audience:    notification.AudienceUser,
			RecipientID: &created.UserID,
			Title:       "Payroll generated",
			Message:     fmt.Sprintf("Your payroll for %s has been generated", created.Month),
			Type:        notification.TypeInfo,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(created), nil
}

// ListMine implements payroll.PayrollService.
func (s *payrollServiceImpl) ListMine(ctx context.Context) ([]payroll.PayrollResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.PayrollRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// List implements payroll.PayrollService.
func (s *payrollServiceImpl) List(ctx context.Context) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// MarkPaid implements payroll.PayrollService. Paying and notifying the
// employee commit together.
func (s *payrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	var paid payroll.PayrollRecord
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		paid, err = s.PayrollRepository.MarkPaid(txCtx, id, time.Now())
		if err != nil {
			return err
		}

		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			Audience:    notification.AudienceUser,
			RecipientID: &paid.UserID,
			Title:       "Salary paid",
			Message:     fmt.Sprintf("Your salary for %s has been paid", paid.Month),
			Type:        notification.TypeSuccess,
		})
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(paid), nil
}

func toResponses(records []payroll.PayrollRecord) []payroll.PayrollResponse {
	out := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		out = append(out, payroll.ToResponse(p))
	}
	return out
}
