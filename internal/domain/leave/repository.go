package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// ListByEmployee returns requests newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequestWithEmployee, int64, error)

	// TransitionFromPending moves a Pending request to status in one
	// conditional update. When the request is no longer Pending it returns
	// the stored request with applied=false so callers can tell a repeat of
	// the same decision from a conflicting one.
	TransitionFromPending(ctx context.Context, id string, status Status, decidedBy string) (request LeaveRequest, applied bool, err error)

	// CountByStatus always includes every status, zero when absent.
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

type LeaveRequestWithEmployee struct {
	LeaveRequest
	EmployeeCode string
	EmployeeName string
}
