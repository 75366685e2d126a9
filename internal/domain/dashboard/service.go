package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// EmployeeDashboard gathers the employee's widgets in parallel.
	EmployeeDashboard(ctx context.Context, employeeID string) (*EmployeeDashboardResponse, error)

	// AdminDashboard returns the organisation overview, cached briefly when
	// a cache is configured.
	AdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)
}

// CacheInvalidator drops the cached admin overview. Services call it after
// writes that change the overview's counts.
type CacheInvalidator interface {
	InvalidateAdmin(ctx context.Context)
}
