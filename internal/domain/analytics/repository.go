package analytics

import (
	"context"
	"time"
)

// StatusCounts holds attendance record counts by status over a window.
type StatusCounts struct {
	Present int64
	Leave   int64
	Total   int64
}

type AnalyticsRepository interface {
	// GetAttendanceStatusCounts counts attendance records with
	// date >= since, grouped into present (present + half-day), leave,
	// and total.
	GetAttendanceStatusCounts(ctx context.Context, since time.Time) (StatusCounts, error)
	GetTotalPayroll(ctx context.Context) (float64, error)
	GetEmployeeCount(ctx context.Context) (int, error)
	GetDepartmentDistribution(ctx context.Context) ([]DepartmentCount, error)
	// GetAttendanceTrend returns one point per day for the trailing
	// window, oldest first, including days with no records.
	GetAttendanceTrend(ctx context.Context, days int) ([]TrendPoint, error)
}
