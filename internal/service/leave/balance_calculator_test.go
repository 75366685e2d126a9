package leave

import (
	"testing"

	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func req(t leave.LeaveType, days int, status leave.Status) leave.LeaveRequest {
	return leave.LeaveRequest{LeaveType: t, NumberOfDays: days, Status: status}
}

func TestCalculateBalances(t *testing.T) {
	tests := []struct {
		name     string
		requests []leave.LeaveRequest
		want     leave.Balances
	}{
		{
			name:     "no requests yields full entitlements",
			requests: nil,
			want:     leave.Balances{"Annual": 18, "Sick": 8, "Personal": 5, "Maternity": 90, "Emergency": 5},
		},
		{
			name: "approved annual requests are deducted",
			requests: []leave.LeaveRequest{
				req(leave.LeaveTypeAnnual, 5, leave.StatusApproved),
				req(leave.LeaveTypeAnnual, 3, leave.StatusApproved),
			},
			want: leave.Balances{"Annual": 10, "Sick": 8, "Personal": 5, "Maternity": 90, "Emergency": 5},
		},
		{
			name: "pending and rejected requests never count",
			requests: []leave.LeaveRequest{
				req(leave.LeaveTypeAnnual, 5, leave.StatusApproved),
				req(leave.LeaveTypeAnnual, 3, leave.StatusApproved),
				req(leave.LeaveTypeAnnual, 20, leave.StatusPending),
				req(leave.LeaveTypeSick, 4, leave.StatusRejected),
			},
			want: leave.Balances{"Annual": 10, "Sick": 8, "Personal": 5, "Maternity": 90, "Emergency": 5},
		},
		{
			name: "balances may go negative",
			requests: []leave.LeaveRequest{
				req(leave.LeaveTypeEmergency, 4, leave.StatusApproved),
				req(leave.LeaveTypeEmergency, 3, leave.StatusApproved),
			},
			want: leave.Balances{"Annual": 18, "Sick": 8, "Personal": 5, "Maternity": 90, "Emergency": -2},
		},
		{
			name: "unknown types are ignored",
			requests: []leave.LeaveRequest{
				req(leave.LeaveType("Sabbatical"), 30, leave.StatusApproved),
			},
			want: leave.Balances{"Annual": 18, "Sick": 8, "Personal": 5, "Maternity": 90, "Emergency": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateBalances(tt.requests))
		})
	}
}

func TestCalculateBalances_DoesNotMutateEntitlements(t *testing.T) {
	CalculateBalances([]leave.LeaveRequest{req(leave.LeaveTypeAnnual, 18, leave.StatusApproved)})
	assert.Equal(t, 18, leave.Entitlements[leave.LeaveTypeAnnual])
}
