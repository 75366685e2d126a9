package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	dashboardCache dashboard.CacheInvalidator
}

// NewLeaveService builds the service. dashboardCache may be nil.
func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository, dashboardCache dashboard.CacheInvalidator) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		dashboardCache:         dashboardCache,
	}
}

// invalidateDashboard drops the admin overview, whose pending count and
// status breakdown move with every submission and decision.
func (l *LeaveServiceImpl) invalidateDashboard(ctx context.Context) {
	if l.dashboardCache != nil {
		l.dashboardCache.InvalidateAdmin(ctx)
	}
}

// Submit implements leave.LeaveService. Requests are accepted even when they
// exceed the remaining balance; the balance then goes negative on approval.
func (l *LeaveServiceImpl) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := l.LeaveRequestRepository.Create(ctx, req.ToEntity(employeeID))
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	l.invalidateDashboard(ctx)

	slog.Info("leave request submitted",
		"leave_request_id", created.ID,
		"employee_id", employeeID,
		"leave_type", created.LeaveType,
		"days", created.NumberOfDays,
	)
	return leave.ToResponse(created), nil
}

// MyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) MyRequests(ctx context.Context, employeeID string) (leave.MyLeaveResponse, error) {
	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.MyLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := leave.MyLeaveResponse{
		Requests: make([]leave.LeaveRequestResponse, 0, len(requests)),
		Balances: leave.ToBalanceResponses(CalculateBalances(requests)),
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, leave.ToResponse(r))
	}
	return resp, nil
}

// Balances implements leave.LeaveService.
func (l *LeaveServiceImpl) Balances(ctx context.Context, employeeID string) (leave.Balances, error) {
	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return CalculateBalances(requests), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := leave.ListLeaveResponse{
		Requests: make([]leave.LeaveRequestResponse, 0, len(requests)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, r := range requests {
		item := leave.ToResponse(r.LeaveRequest)
		item.EmployeeCode = r.EmployeeCode
		item.EmployeeName = r.EmployeeName
		resp.Requests = append(resp.Requests, item)
	}
	return resp, nil
}

// Decide implements leave.LeaveService. Pending moves to Approved or
// Rejected exactly once. Repeating the decision already taken is a no-op;
// anything else is a conflict.
func (l *LeaveServiceImpl) Decide(ctx context.Context, id string, status leave.Status, deciderID string) (leave.DecisionResponse, error) {
	if !status.Decision() {
		return leave.DecisionResponse{}, leave.ErrInvalidDecision
	}

	request, applied, err := l.LeaveRequestRepository.TransitionFromPending(ctx, id, status, deciderID)
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	if !applied {
		if request.Status != status {
			return leave.DecisionResponse{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		return leave.DecisionResponse{Request: leave.ToResponse(request), Applied: false}, nil
	}
	l.invalidateDashboard(ctx)

	slog.Info("leave request decided",
		"leave_request_id", id,
		"status", status,
		"decided_by", deciderID,
	)
	return leave.DecisionResponse{Request: leave.ToResponse(request), Applied: true}, nil
}
