package attendance

import "errors"

// Attendance domain errors
var (
	ErrNotCheckedIn       = errors.New("you have not checked in yet")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidTimeRange   = errors.New("check_out must be after check_in")
	ErrInvalidStatus      = errors.New("status must be one of: Present, Absent, Late")
)
