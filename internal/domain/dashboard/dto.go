package dashboard

import (
	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/shopspring/decimal"
)

// EmployeeDashboardResponse is the self-service landing page.
type EmployeeDashboardResponse struct {
	EmployeeName string                     `json:"employee_name"`
	Attendance   attendance.SummaryResponse `json:"attendance"`
	Leave        []leave.BalanceResponse    `json:"leave_balances"`
	YTDEarnings  decimal.Decimal            `json:"ytd_earnings"`
	Projects     project.Stats              `json:"projects"`
}

type ProjectProgressItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	EmployeeName string `json:"employee_name"`
	Progress     int    `json:"progress"`
	Status       string `json:"status"`
}

type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// AdminDashboardResponse is the back-office overview.
type AdminDashboardResponse struct {
	TotalEmployees     int64                     `json:"total_employees"`
	TotalProjects      int64                     `json:"total_projects"`
	PendingLeaves      int64                     `json:"pending_leaves"`
	TodayAttendance    int64                     `json:"today_attendance"`
	TopProjects        []ProjectProgressItem     `json:"top_projects"`
	LeaveStatusCounts  map[string]int64          `json:"leave_status_counts"`
	AttendanceByMonth  []MonthlyCount            `json:"attendance_by_month"`
	TopPerformers      []performance.RatingEntry `json:"top_performers"`
	ProjectSuccessRate int                       `json:"project_success_rate"`
	GeneratedAt        string                    `json:"generated_at"`
}
