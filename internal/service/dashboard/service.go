package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/domain/payroll"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/managely-hr/hr-backend-go/internal/pkg/cache"
	"github.com/managely-hr/hr-backend-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	adminCacheKey = "dashboard:admin"
	adminCacheTTL = 60 * time.Second

	topProjects   = 5
	topPerformers = 5
	chartMonths   = 6
)

// Sources lists what the dashboards read from. Employee widgets reuse the
// domain services so their numbers match the dedicated pages.
type Sources struct {
	Employees   employee.EmployeeRepository
	Attendances attendance.AttendanceRepository
	Leaves      leave.LeaveRequestRepository
	Projects    project.ProjectRepository

	AttendanceService  attendance.AttendanceService
	LeaveService       leave.LeaveService
	PayrollService     payroll.PayrollService
	ProjectService     project.ProjectService
	PerformanceService performance.PerformanceService
}

type DashboardServiceImpl struct {
	src      Sources
	cache    *cache.JSONCache
	location *time.Location
	now      func() time.Time
}

// NewDashboardService builds the service. A nil cache disables caching.
func NewDashboardService(src Sources, jsonCache *cache.JSONCache, location *time.Location) dashboard.DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardServiceImpl{
		src:      src,
		cache:    jsonCache,
		location: location,
		now:      time.Now,
	}
}

// EmployeeDashboard returns combined dashboard data using parallel goroutines.
func (s *DashboardServiceImpl) EmployeeDashboard(ctx context.Context, employeeID string) (*dashboard.EmployeeDashboardResponse, error) {
	var (
		name     string
		summary  attendance.MonthlySummary
		balances leave.Balances
		resp     = &dashboard.EmployeeDashboardResponse{}
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e, err := s.src.Employees.GetByID(gCtx, employeeID)
		if err != nil {
			return err
		}
		name = e.FullName
		return nil
	})

	g.Go(func() error {
		var err error
		summary, err = s.src.AttendanceService.Summary(gCtx, employeeID, time.Time{})
		return err
	})

	g.Go(func() error {
		var err error
		balances, err = s.src.LeaveService.Balances(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		ytd, err := s.src.PayrollService.YearToDate(gCtx, employeeID)
		if err != nil {
			return err
		}
		resp.YTDEarnings = ytd
		return nil
	})

	g.Go(func() error {
		projects, err := s.src.ProjectService.MyProjects(gCtx, employeeID)
		if err != nil {
			return err
		}
		resp.Projects = projects.Stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.EmployeeName = name
	resp.Attendance = attendance.ToSummaryResponse(summary)
	resp.Leave = leave.ToBalanceResponses(balances)
	return resp, nil
}

// AdminDashboard serves the cached overview when fresh, otherwise rebuilds it.
// Cache failures are logged and never fail the request.
func (s *DashboardServiceImpl) AdminDashboard(ctx context.Context) (*dashboard.AdminDashboardResponse, error) {
	var cached dashboard.AdminDashboardResponse
	found, err := s.cache.Get(ctx, adminCacheKey, &cached)
	if err != nil {
		slog.Warn("admin dashboard cache read failed", "error", err)
	}
	if found {
		return &cached, nil
	}

	resp, err := s.buildAdminDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, adminCacheKey, resp, adminCacheTTL); err != nil {
		slog.Warn("admin dashboard cache write failed", "error", err)
	}
	return resp, nil
}

func (s *DashboardServiceImpl) buildAdminDashboard(ctx context.Context) (*dashboard.AdminDashboardResponse, error) {
	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	firstMonth := time.Date(now.Year(), now.Month()-(chartMonths-1), 1, 0, 0, 0, 0, time.UTC)

	resp := &dashboard.AdminDashboardResponse{GeneratedAt: now.Format(time.RFC3339)}

	var (
		leaveCounts map[leave.Status]int64
		monthCounts map[time.Time]int64
		ratings     []performance.RatingEntry
		top         []project.ProjectWithEmployee
		avgProgress float64
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Active headcount
	g.Go(func() error {
		n, err := s.src.Employees.CountActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		resp.TotalEmployees = n
		return nil
	})

	// 2. Project totals and org-wide average progress
	g.Go(func() error {
		n, avg, err := s.src.Projects.ProgressStats(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load project stats: %w", err)
		}
		resp.TotalProjects = n
		avgProgress = avg
		return nil
	})

	// 3. Most advanced projects
	g.Go(func() error {
		var err error
		top, err = s.src.Projects.TopByProgress(gCtx, topProjects)
		if err != nil {
			return fmt.Errorf("failed to load top projects: %w", err)
		}
		return nil
	})

	// 4. Leave requests per status
	g.Go(func() error {
		var err error
		leaveCounts, err = s.src.Leaves.CountByStatus(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count leave requests: %w", err)
		}
		return nil
	})

	// 5. Today's attendance
	g.Go(func() error {
		n, err := s.src.Attendances.CountByDate(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to count today's attendance: %w", err)
		}
		resp.TodayAttendance = n
		return nil
	})

	// 6. Attendance records per month
	g.Go(func() error {
		var err error
		monthCounts, err = s.src.Attendances.CountByMonth(gCtx, firstMonth, today)
		if err != nil {
			return fmt.Errorf("failed to count monthly attendance: %w", err)
		}
		return nil
	})

	// 7. Ratings
	g.Go(func() error {
		var err error
		ratings, err = s.src.PerformanceService.ListRatings(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.LeaveStatusCounts = make(map[string]int64, len(leave.Statuses))
	for _, st := range leave.Statuses {
		resp.LeaveStatusCounts[string(st)] = leaveCounts[st]
	}
	resp.PendingLeaves = leaveCounts[leave.StatusPending]

	resp.AttendanceByMonth = make([]dashboard.MonthlyCount, 0, chartMonths)
	for i := 0; i < chartMonths; i++ {
		m := firstMonth.AddDate(0, i, 0)
		resp.AttendanceByMonth = append(resp.AttendanceByMonth, dashboard.MonthlyCount{
			Month: m.Format("2006-01"),
			Count: monthCounts[m],
		})
	}

	resp.TopProjects = make([]dashboard.ProjectProgressItem, 0, len(top))
	for _, p := range top {
		resp.TopProjects = append(resp.TopProjects, dashboard.ProjectProgressItem{
			ID:           p.ID,
			Title:        p.Title,
			EmployeeName: p.EmployeeName,
			Progress:     p.Progress,
			Status:       string(p.Status),
		})
	}

	if len(ratings) > topPerformers {
		ratings = ratings[:topPerformers]
	}
	resp.TopPerformers = ratings
	if resp.TopPerformers == nil {
		resp.TopPerformers = []performance.RatingEntry{}
	}

	resp.ProjectSuccessRate = int(utils.Round(avgProgress, 0))
	return resp, nil
}
