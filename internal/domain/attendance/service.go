package attendance

import "context"

type AttendanceService interface {
	// CheckIn records the caller as present for today; at most once per
	// calendar date.
	CheckIn(ctx context.Context) (AttendanceResponse, error)
	// CheckOut closes today's open session and computes work hours.
	CheckOut(ctx context.Context) (AttendanceResponse, error)
	ListMine(ctx context.Context) ([]AttendanceResponse, error)
	// List is the admin view, filterable by user and date.
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
}
