package attendance

import (
	"context"
	"time"
)

// AttendanceService covers employee self-service and admin correction.
// Callers pass the employee id resolved from the authenticated principal.
type AttendanceService interface {
	Today(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckIn(ctx context.Context, employeeID string) (CheckInResponse, error)
	CheckOut(ctx context.Context, employeeID string) (CheckInResponse, error)
	Summary(ctx context.Context, employeeID string, reference time.Time) (MonthlySummary, error)
	MyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) (MyAttendanceResponse, error)

	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Correct(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
