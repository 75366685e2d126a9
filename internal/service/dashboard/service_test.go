package dashboard

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/managely-hr/hr-backend-go/internal/mocks"
	"github.com/managely-hr/hr-backend-go/internal/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

type dashboardFixture struct {
	employees   *mocks.EmployeeRepository
	attendances *mocks.AttendanceRepository
	leaves      *mocks.LeaveRequestRepository
	projects    *mocks.ProjectRepository

	attendanceSvc  *mocks.AttendanceService
	leaveSvc       *mocks.LeaveService
	payrollSvc     *mocks.PayrollService
	projectSvc     *mocks.ProjectService
	performanceSvc *mocks.PerformanceService
}

func newDashboardFixture() *dashboardFixture {
	return &dashboardFixture{
		employees:      &mocks.EmployeeRepository{},
		attendances:    &mocks.AttendanceRepository{},
		leaves:         &mocks.LeaveRequestRepository{},
		projects:       &mocks.ProjectRepository{},
		attendanceSvc:  &mocks.AttendanceService{},
		leaveSvc:       &mocks.LeaveService{},
		payrollSvc:     &mocks.PayrollService{},
		projectSvc:     &mocks.ProjectService{},
		performanceSvc: &mocks.PerformanceService{},
	}
}

func (f *dashboardFixture) service(c *cache.JSONCache) *DashboardServiceImpl {
	svc := NewDashboardService(Sources{
		Employees:          f.employees,
		Attendances:        f.attendances,
		Leaves:             f.leaves,
		Projects:           f.projects,
		AttendanceService:  f.attendanceSvc,
		LeaveService:       f.leaveSvc,
		PayrollService:     f.payrollSvc,
		ProjectService:     f.projectSvc,
		PerformanceService: f.performanceSvc,
	}, c, time.UTC).(*DashboardServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func (f *dashboardFixture) expectAdminSources() {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	first := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

	f.employees.On("CountActive", mock.Anything).Return(int64(42), nil)
	f.projects.On("ProgressStats", mock.Anything).Return(int64(8), 62.5, nil)
	f.projects.On("TopByProgress", mock.Anything, 5).Return([]project.ProjectWithEmployee{
		{Project: project.Project{ID: "p1", Title: "Revamp", Progress: 90, Status: project.StatusReview}, EmployeeName: "Budi"},
	}, nil)
	f.leaves.On("CountByStatus", mock.Anything).Return(map[leave.Status]int64{leave.StatusPending: 3}, nil)
	f.attendances.On("CountByDate", mock.Anything, today).Return(int64(30), nil)
	f.attendances.On("CountByMonth", mock.Anything, first, today).Return(map[time.Time]int64{
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC): 4,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC):  12,
	}, nil)
	f.performanceSvc.On("ListRatings", mock.Anything).Return([]performance.RatingEntry{
		{EmployeeID: "e1", OverallRating: 4.9},
		{EmployeeID: "e2", OverallRating: 4.5},
		{EmployeeID: "e3", OverallRating: 4.1},
		{EmployeeID: "e4", OverallRating: 3.8},
		{EmployeeID: "e5", OverallRating: 3.0},
		{EmployeeID: "e6", OverallRating: 2.2},
	}, nil)
}

func TestDashboardService_EmployeeDashboard(t *testing.T) {
	f := newDashboardFixture()
	svc := f.service(nil)

	f.employees.On("GetByID", mock.Anything, "emp-1").Return(employee.Employee{ID: "emp-1", FullName: "Budi Santoso"}, nil)
	f.attendanceSvc.On("Summary", mock.Anything, "emp-1", time.Time{}).Return(attendance.MonthlySummary{
		EmployeeID:        "emp-1",
		ReferenceDate:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalPresent:      9,
		AttendancePercent: 90,
		WeekHours:         "32h 15m",
	}, nil)
	f.leaveSvc.On("Balances", mock.Anything, "emp-1").Return(leave.Balances{
		leave.LeaveTypeAnnual: 15, leave.LeaveTypeSick: 8, leave.LeaveTypePersonal: 5, leave.LeaveTypeMaternity: 90, leave.LeaveTypeEmergency: 5,
	}, nil)
	f.payrollSvc.On("YearToDate", mock.Anything, "emp-1").Return(decimal.RequireFromString("15000000"), nil)
	f.projectSvc.On("MyProjects", mock.Anything, "emp-1").Return(project.MyProjectsResponse{
		Stats: project.Stats{Total: 2, Active: 1, Completed: 1, SuccessRate: 75},
	}, nil)

	// Act
	resp, err := svc.EmployeeDashboard(t.Context(), "emp-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", resp.EmployeeName)
	assert.Equal(t, "32h 15m", resp.Attendance.WeekHours)
	assert.Equal(t, "2025-03-15", resp.Attendance.ReferenceDate)
	require.Len(t, resp.Leave, 5)
	assert.Equal(t, 3, resp.Leave[0].Used)
	assert.True(t, resp.YTDEarnings.Equal(decimal.NewFromInt(15000000)))
	assert.Equal(t, 75, resp.Projects.SuccessRate)
}

func TestDashboardService_EmployeeDashboard_PropagatesError(t *testing.T) {
	f := newDashboardFixture()
	svc := f.service(nil)
	boom := errors.New("db down")

	f.employees.On("GetByID", mock.Anything, "emp-1").Return(employee.Employee{ID: "emp-1"}, nil)
	f.attendanceSvc.On("Summary", mock.Anything, "emp-1", time.Time{}).Return(attendance.MonthlySummary{}, nil)
	f.leaveSvc.On("Balances", mock.Anything, "emp-1").Return(nil, boom)
	f.payrollSvc.On("YearToDate", mock.Anything, "emp-1").Return(decimal.Zero, nil)
	f.projectSvc.On("MyProjects", mock.Anything, "emp-1").Return(project.MyProjectsResponse{}, nil)

	resp, err := svc.EmployeeDashboard(t.Context(), "emp-1")

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, resp)
}

func TestDashboardService_AdminDashboard_WithoutCache(t *testing.T) {
	f := newDashboardFixture()
	svc := f.service(nil)
	f.expectAdminSources()

	// Act
	resp, err := svc.AdminDashboard(t.Context())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.TotalEmployees)
	assert.Equal(t, int64(8), resp.TotalProjects)
	assert.Equal(t, int64(3), resp.PendingLeaves)
	assert.Equal(t, int64(30), resp.TodayAttendance)
	assert.Equal(t, map[string]int64{"Pending": 3, "Approved": 0, "Rejected": 0}, resp.LeaveStatusCounts)
	assert.Equal(t, []dashboard.MonthlyCount{
		{Month: "2024-10", Count: 0},
		{Month: "2024-11", Count: 0},
		{Month: "2024-12", Count: 4},
		{Month: "2025-01", Count: 0},
		{Month: "2025-02", Count: 0},
		{Month: "2025-03", Count: 12},
	}, resp.AttendanceByMonth)
	require.Len(t, resp.TopPerformers, 5)
	assert.Equal(t, "e1", resp.TopPerformers[0].EmployeeID)
	require.Len(t, resp.TopProjects, 1)
	assert.Equal(t, "Budi", resp.TopProjects[0].EmployeeName)
	assert.Equal(t, 63, resp.ProjectSuccessRate)
}

func TestDashboardService_AdminDashboard_CacheHit(t *testing.T) {
	f := newDashboardFixture()
	db, redisMock := redismock.NewClientMock()
	svc := f.service(cache.NewJSONCache(db))

	cached, err := json.Marshal(dashboard.AdminDashboardResponse{TotalEmployees: 7, GeneratedAt: "2025-03-15T09:59:30Z"})
	require.NoError(t, err)
	redisMock.ExpectGet(adminCacheKey).SetVal(string(cached))

	resp, err := svc.AdminDashboard(t.Context())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.TotalEmployees)
	f.employees.AssertNotCalled(t, "CountActive", mock.Anything)
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDashboardService_AdminDashboard_CacheMissStores(t *testing.T) {
	f := newDashboardFixture()
	db, redisMock := redismock.NewClientMock()
	svc := f.service(cache.NewJSONCache(db))
	f.expectAdminSources()

	redisMock.ExpectGet(adminCacheKey).RedisNil()
	redisMock.CustomMatch(func(expected, actual []interface{}) error {
		if len(actual) < 2 || actual[0] != "set" || actual[1] != adminCacheKey {
			return errors.New("unexpected command")
		}
		return nil
	}).ExpectSet(adminCacheKey, "", adminCacheTTL).SetVal("OK")

	resp, err := svc.AdminDashboard(t.Context())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.TotalEmployees)
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDashboardService_AdminDashboard_CacheErrorFallsThrough(t *testing.T) {
	f := newDashboardFixture()
	db, redisMock := redismock.NewClientMock()
	svc := f.service(cache.NewJSONCache(db))
	f.expectAdminSources()

	redisMock.ExpectGet(adminCacheKey).SetErr(errors.New("connection refused"))
	redisMock.CustomMatch(func(expected, actual []interface{}) error { return nil }).
		ExpectSet(adminCacheKey, "", adminCacheTTL).SetErr(errors.New("connection refused"))

	resp, err := svc.AdminDashboard(t.Context())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.TotalEmployees)
}
