package leave

import (
	"context"
)

type LeaveService interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	MyRequests(ctx context.Context, employeeID string) (MyLeaveResponse, error)
	Balances(ctx context.Context, employeeID string) (Balances, error)

	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	// Decide applies an approval or rejection by the back-office user deciderID.
	Decide(ctx context.Context, id string, status Status, deciderID string) (DecisionResponse, error)
}
