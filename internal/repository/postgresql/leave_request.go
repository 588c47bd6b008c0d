package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/leave"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

const leaveColumns = `lr.id, lr.user_id, lr.type, lr.start_date, lr.end_date,
		lr.reason, lr.status, lr.admin_comment, lr.decided_by, lr.decided_at,
		lr.created_at, u.name`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.UserID,
		&lr.Type,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.AdminComment,
		&lr.DecidedBy,
		&lr.DecidedAt,
		&lr.CreatedAt,
		&lr.UserName,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, type, start_date, end_date, reason, status,
			admin_comment, decided_by, decided_at, created_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		lr.UserID, lr.Type, lr.StartDate, lr.EndDate, lr.Reason, lr.Status,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Type,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.Status,
		&created.AdminComment,
		&created.DecidedBy,
		&created.DecidedAt,
		&created.CreatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`, leaveColumns)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.user_id = $1
		ORDER BY lr.created_at DESC
	`, leaveColumns)

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		ORDER BY lr.created_at DESC
	`, leaveColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

// Decide implements leave.LeaveRequestRepository. The status='pending'
// guard makes the first decision win; a losing racer matches zero rows
// and the caller distinguishes missing from already-processed.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, comment *string, decidedBy string, decidedAt time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, admin_comment = $2, decided_by = $3, decided_at = $4
		WHERE id = $5 AND status = 'pending'
		RETURNING id, user_id, type, start_date, end_date, reason, status,
			admin_comment, decided_by, decided_at, created_at
	`

	var updated leave.LeaveRequest
	err := q.QueryRow(ctx, query, status, comment, decidedBy, decidedAt, id).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Type,
		&updated.StartDate,
		&updated.EndDate,
		&updated.Reason,
		&updated.Status,
		&updated.AdminComment,
		&updated.DecidedBy,
		&updated.DecidedAt,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}
