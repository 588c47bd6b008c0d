package attendance

import (
	"context"
	"math"
	"time"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/attendance"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
)

type attendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &attendanceServiceImpl{AttendanceRepository: attendanceRepo}
}

// startOfDay truncates to the local calendar date.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// roundWorkHours rounds a duration to fractional hours with two
// decimal places.
func roundWorkHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// CheckIn implements attendance.AttendanceService. The unique index on
// (user_id, date) decides the winner when two check-ins race.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	checkIn := now

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:  actor.UserID,
		Date:    startOfDay(now),
		CheckIn: &checkIn,
		Status:  attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()

	open, err := s.AttendanceRepository.GetOpenForDate(ctx, actor.UserID, startOfDay(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if open.CheckIn == nil || !now.After(*open.CheckIn) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	workHours := roundWorkHours(now.Sub(*open.CheckIn))

	closed, err := s.AttendanceRepository.CloseSession(ctx, open.ID, now, workHours)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(closed), nil
}

// ListMine implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListMine(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// List implements attendance.AttendanceService.
func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, attendance.ToResponse(a))
	}
	return out
}
