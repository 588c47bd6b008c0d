package attendance

import "errors"

var (
	ErrAlreadyCheckedIn      = errors.New("already checked in today")
	ErrNoOpenCheckIn         = errors.New("no open check-in for today")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must be after check-in")
	ErrAttendanceNotFound    = errors.New("attendance record not found")
)
