package leave

import "github.com/managely-hr/hr-backend-go/internal/domain/leave"

// CalculateBalances returns entitlement minus approved days for every leave
// type. Pending and rejected requests are ignored and balances are not
// floored, so over-allocation shows up as a negative number.
func CalculateBalances(requests []leave.LeaveRequest) leave.Balances {
	balances := make(leave.Balances, len(leave.Entitlements))
	for t, days := range leave.Entitlements {
		balances[t] = days
	}

	for _, r := range requests {
		if r.Status != leave.StatusApproved {
			continue
		}
		if _, known := balances[r.LeaveType]; !known {
			continue
		}
		balances[r.LeaveType] -= r.NumberOfDays
	}

	return balances
}
