package analytics

import (
	"context"
	"math"
	"time"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/analytics"
)

const (
	rateWindowDays = 30
	trendDays      = 7
)

type analyticsServiceImpl struct {
	analytics.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo analytics.AnalyticsRepository) analytics.AnalyticsService {
	return &analyticsServiceImpl{AnalyticsRepository: analyticsRepo}
}

func roundRate(v float64) float64 {
	return math.Round(v*100) / 100
}

// Get implements analytics.AnalyticsService. Everything is computed
// from the store in one pass; no derived state is persisted.
func (s *analyticsServiceImpl) Get(ctx context.Context) (analytics.AnalyticsResponse, error) {
	since := time.Now().AddDate(0, 0, -rateWindowDays)

	counts, err := s.AnalyticsRepository.GetAttendanceStatusCounts(ctx, since)
	if err != nil {
		return analytics.AnalyticsResponse{}, err
	}

	var attendanceRate, leaveRate float64
	if counts.Total > 0 {
		attendanceRate = roundRate(float64(counts.Present) / float64(counts.Total) * 100)
		leaveRate = roundRate(float64(counts.Leave) / float64(counts.Total) * 100)
	}

	totalPayroll, err := s.AnalyticsRepository.GetTotalPayroll(ctx)
	if err != nil {
		return analytics.AnalyticsResponse{}, err
	}

	employeeCount, err := s.AnalyticsRepository.GetEmployeeCount(ctx)
	if err != nil {
		return analytics.AnalyticsResponse{}, err
	}

	departments, err := s.AnalyticsRepository.GetDepartmentDistribution(ctx)
	if err != nil {
		return analytics.AnalyticsResponse{}, err
	}

	trend, err := s.AnalyticsRepository.GetAttendanceTrend(ctx, trendDays)
	if err != nil {
		return analytics.AnalyticsResponse{}, err
	}

	return analytics.AnalyticsResponse{
		AttendanceRate:         attendanceRate,
		LeaveRate:              leaveRate,
		TotalPayroll:           totalPayroll,
		EmployeeCount:          employeeCount,
		DepartmentDistribution: departments,
		AttendanceTrend:        trend,
	}, nil
}
