package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/attendance"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

const attendanceColumns = `a.id, a.user_id, a.date, a.check_in, a.check_out,
		a.status, a.work_hours, a.created_at, a.updated_at, u.name`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Status,
		&a.WorkHours,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.UserName,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository. The unique index
// on (user_id, date) turns a duplicate check-in into
// ErrAlreadyCheckedIn regardless of interleaving.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (user_id, date, check_in, check_out, status, work_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, date, check_in, check_out, status, work_hours, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		att.UserID, att.Date, att.CheckIn, att.CheckOut, att.Status, att.WorkHours,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.CheckIn,
		&created.CheckOut,
		&created.Status,
		&created.WorkHours,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, err
	}
	return created, nil
}

// GetOpenForDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenForDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1 AND a.date = $2
		  AND a.check_in IS NOT NULL AND a.check_out IS NULL
	`, attendanceColumns)

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

// CloseSession implements attendance.AttendanceRepository. The guard on
// check_out IS NULL makes a concurrent second check-out match zero
// rows instead of overwriting the first.
func (r *attendanceRepositoryImpl) CloseSession(ctx context.Context, id string, checkOut time.Time, workHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $1, work_hours = $2, updated_at = NOW()
		WHERE id = $3 AND check_out IS NULL
		RETURNING id, user_id, date, check_in, check_out, status, work_hours, created_at, updated_at
	`

	var updated attendance.Attendance
	err := q.QueryRow(ctx, query, checkOut, workHours, id).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Date,
		&updated.CheckIn,
		&updated.CheckOut,
		&updated.Status,
		&updated.WorkHours,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, err
	}
	return updated, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
		ORDER BY a.date DESC
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE 1=1
	`, attendanceColumns)
	args := []interface{}{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		query += fmt.Sprintf(" AND a.user_id = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND a.date = $%d", len(args))
	}
	query += " ORDER BY a.date DESC, u.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// MarkAbsentForDate implements attendance.AttendanceRepository. Runs as
// a single INSERT ... SELECT so a concurrent check-in either lands
// before the scan or bumps into the unique index, which ON CONFLICT
// swallows.
func (r *attendanceRepositoryImpl) MarkAbsentForDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		INSERT INTO attendances (user_id, date, status)
		SELECT u.id, $1, 'absent'
		FROM users u
		WHERE u.role = 'employee'
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a WHERE a.user_id = u.id AND a.date = $1
		  )
		ON CONFLICT (user_id, date) DO NOTHING
	`, date)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
