package postgresql

import (
	"context"
	"time"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/analytics"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

// GetAttendanceStatusCounts implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) GetAttendanceStatusCounts(ctx context.Context, since time.Time) (analytics.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	var counts analytics.StatusCounts
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('present', 'half-day')),
			COUNT(*) FILTER (WHERE status = 'leave'),
			COUNT(*)
		FROM attendances
		WHERE date >= $1
	`, since).Scan(&counts.Present, &counts.Leave, &counts.Total)
	if err != nil {
		return analytics.StatusCounts{}, err
	}
	return counts, nil
}

// GetTotalPayroll implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) GetTotalPayroll(ctx context.Context) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var total float64
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(net_salary), 0) FROM payrolls`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetEmployeeCount implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) GetEmployeeCount(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'employee'`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetDepartmentDistribution implements analytics.AnalyticsRepository.
// Users without a department land in the "Unassigned" bucket.
func (r *analyticsRepositoryImpl) GetDepartmentDistribution(ctx context.Context) ([]analytics.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT COALESCE(department, 'Unassigned'), COUNT(*)
		FROM users
		WHERE role = 'employee'
		GROUP BY 1
		ORDER BY 2 DESC, 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analytics.DepartmentCount
	for rows.Next() {
		var dc analytics.DepartmentCount
		if err := rows.Scan(&dc.Name, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// GetAttendanceTrend implements analytics.AnalyticsRepository. The
// generate_series left join yields a zero row for days without records.
func (r *analyticsRepositoryImpl) GetAttendanceTrend(ctx context.Context, days int) ([]analytics.TrendPoint, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT
			to_char(d.day, 'YYYY-MM-DD'),
			COALESCE(COUNT(a.id) FILTER (WHERE a.status IN ('present', 'half-day')), 0),
			COALESCE(COUNT(a.id) FILTER (WHERE a.status = 'absent'), 0)
		FROM generate_series(
			CURRENT_DATE - ($1 - 1) * INTERVAL '1 day',
			CURRENT_DATE,
			INTERVAL '1 day'
		) AS d(day)
		LEFT JOIN attendances a ON a.date = d.day
		GROUP BY d.day
		ORDER BY d.day
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analytics.TrendPoint
	for rows.Next() {
		var tp analytics.TrendPoint
		if err := rows.Scan(&tp.Date, &tp.Present, &tp.Absent); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}
