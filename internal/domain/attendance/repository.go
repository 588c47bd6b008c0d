package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a record; a second insert for the same
	// (user, date) fails with ErrAlreadyCheckedIn via the unique index.
	Create(ctx context.Context, att Attendance) (Attendance, error)
	// GetOpenForDate returns the record for (user, date) that has a
	// check-in and no check-out yet.
	GetOpenForDate(ctx context.Context, userID string, date time.Time) (Attendance, error)
	// CloseSession sets check-out and work hours; guarded on
	// check_out IS NULL so concurrent check-outs cannot overwrite.
	CloseSession(ctx context.Context, id string, checkOut time.Time, workHours float64) (Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
	// MarkAbsentForDate inserts absent records for every employee with
	// no record on the given date; returns the number inserted.
	MarkAbsentForDate(ctx context.Context, date time.Time) (int64, error)
}
