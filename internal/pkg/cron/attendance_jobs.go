package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/attendance"
)

// RegisterAttendanceJobs wires the end-of-day attendance sweep into the
// scheduler. The job runs hourly but only acts shortly after midnight,
// closing out the previous day: every employee without a record gets an
// absent one. The INSERT is conflict-safe, so an extra run is harmless.
func RegisterAttendanceJobs(s *Scheduler, attendanceRepo attendance.AttendanceRepository) {
	s.AddJob("mark-absent-employees", time.Hour, func(ctx context.Context) error {
		now := time.Now()
		if now.Hour() != 0 {
			return nil
		}

		yesterday := now.AddDate(0, 0, -1)
		date := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())

		marked, err := attendanceRepo.MarkAbsentForDate(ctx, date)
		if err != nil {
			return err
		}
		if marked > 0 {
			slog.Info("Marked absent employees", "date", date.Format("2006-01-02"), "count", marked)
		}
		return nil
	})
}
