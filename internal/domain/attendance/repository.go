package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// GetOrCreate returns the record for (employeeID, date), inserting an
	// Absent record without timestamps when none exists. Safe under concurrent calls.
	GetOrCreate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// RecordCheckIn sets check_in and status Present only if no check-in is
	// stored yet. applied reports whether the row changed.
	RecordCheckIn(ctx context.Context, employeeID string, date time.Time, at TimeOfDay) (record Attendance, applied bool, err error)

	// RecordCheckOut sets check_out only if none is stored yet and a check-in exists.
	RecordCheckOut(ctx context.Context, employeeID string, date time.Time, at TimeOfDay) (record Attendance, applied bool, err error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// Update overwrites status and both timestamps. Used for admin correction.
	Update(ctx context.Context, record Attendance) (Attendance, error)

	// ListByEmployeeBetween returns records with from <= date <= to ordered by date.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// List returns records across employees for the back office.
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceWithEmployee, int64, error)

	CountByDate(ctx context.Context, date time.Time) (int64, error)

	// CountByMonth returns record counts keyed by first-of-month for months in [from, to].
	CountByMonth(ctx context.Context, from, to time.Time) (map[time.Time]int64, error)
}

// AttendanceWithEmployee carries the employee identity for list views.
type AttendanceWithEmployee struct {
	Attendance
	EmployeeCode string
	EmployeeName string
}
