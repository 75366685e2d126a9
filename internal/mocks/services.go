package mocks

import (
	"context"
	"io"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/domain/document"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/domain/payroll"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type AuthService struct{ mock.Mock }

func (m *AuthService) LoginAdmin(ctx context.Context, req auth.AdminLoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req, session)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *AuthService) LoginEmployee(ctx context.Context, req auth.EmployeeLoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req, session)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *AuthService) ChangeFirstLoginPassword(ctx context.Context, principal auth.Principal, req auth.FirstLoginPasswordRequest) error {
	return m.Called(ctx, principal, req).Error(0)
}

func (m *AuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(auth.AccessTokenResponse), args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, refreshToken string, accessToken string) error {
	return m.Called(ctx, refreshToken, accessToken).Error(0)
}

func (m *AuthService) EnsureBootstrapAdmin(ctx context.Context, req auth.BootstrapAdminRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

type SettingsService struct{ mock.Mock }

func (m *SettingsService) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *SettingsService) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *SettingsService) ChangePassword(ctx context.Context, userID string, req user.ChangePasswordRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

type EmployeeService struct{ mock.Mock }

func (m *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.CreateEmployeeResponse), args.Error(1)
}

func (m *EmployeeService) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(employee.ListEmployeeResponse), args.Error(1)
}

func (m *EmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) SetActive(ctx context.Context, req employee.SetActiveRequest) (employee.SetActiveResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.SetActiveResponse), args.Error(1)
}

func (m *EmployeeService) SendMessage(ctx context.Context, id string, senderName string, req employee.MessageEmployeeRequest) error {
	return m.Called(ctx, id, senderName, req).Error(0)
}

type ProfileService struct{ mock.Mock }

func (m *ProfileService) GetProfile(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *ProfileService) UpdateProfile(ctx context.Context, employeeID string, req employee.SelfUpdateRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, employeeID, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *ProfileService) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, employeeID, file, filename)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

type AttendanceService struct{ mock.Mock }

func (m *AttendanceService) Today(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *AttendanceService) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(attendance.CheckInResponse), args.Error(1)
}

func (m *AttendanceService) CheckOut(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(attendance.CheckInResponse), args.Error(1)
}

func (m *AttendanceService) Summary(ctx context.Context, employeeID string, reference time.Time) (attendance.MonthlySummary, error) {
	args := m.Called(ctx, employeeID, reference)
	return args.Get(0).(attendance.MonthlySummary), args.Error(1)
}

func (m *AttendanceService) MyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) (attendance.MyAttendanceResponse, error) {
	args := m.Called(ctx, employeeID, filter)
	return args.Get(0).(attendance.MyAttendanceResponse), args.Error(1)
}

func (m *AttendanceService) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(attendance.ListAttendanceResponse), args.Error(1)
}

func (m *AttendanceService) Correct(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

type LeaveService struct{ mock.Mock }

func (m *LeaveService) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, employeeID, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) MyRequests(ctx context.Context, employeeID string) (leave.MyLeaveResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(leave.MyLeaveResponse), args.Error(1)
}

func (m *LeaveService) Balances(ctx context.Context, employeeID string) (leave.Balances, error) {
	args := m.Called(ctx, employeeID)
	b, _ := args.Get(0).(leave.Balances)
	return b, args.Error(1)
}

func (m *LeaveService) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(leave.ListLeaveResponse), args.Error(1)
}

func (m *LeaveService) Decide(ctx context.Context, id string, status leave.Status, deciderID string) (leave.DecisionResponse, error) {
	args := m.Called(ctx, id, status, deciderID)
	return args.Get(0).(leave.DecisionResponse), args.Error(1)
}

type PayrollService struct{ mock.Mock }

func (m *PayrollService) Create(ctx context.Context, req payroll.PayrollRequest) (payroll.PayrollResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) Update(ctx context.Context, id string, req payroll.PayrollRequest) (payroll.PayrollResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(payroll.ListPayrollResponse), args.Error(1)
}

func (m *PayrollService) AttachPayslip(ctx context.Context, id string, file io.Reader, filename string) (payroll.PayrollResponse, error) {
	args := m.Called(ctx, id, file, filename)
	return args.Get(0).(payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) MyPayroll(ctx context.Context, employeeID string) (payroll.MyPayrollResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(payroll.MyPayrollResponse), args.Error(1)
}

func (m *PayrollService) YearToDate(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *PayrollService) Payslip(ctx context.Context, id string, employeeID string) (payroll.Payslip, error) {
	args := m.Called(ctx, id, employeeID)
	return args.Get(0).(payroll.Payslip), args.Error(1)
}

type PerformanceService struct{ mock.Mock }

func (m *PerformanceService) MyPerformance(ctx context.Context, employeeID string) (performance.PerformanceResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(performance.PerformanceResponse), args.Error(1)
}

func (m *PerformanceService) ListRatings(ctx context.Context) ([]performance.RatingEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]performance.RatingEntry)
	return entries, args.Error(1)
}

func (m *PerformanceService) Detail(ctx context.Context, employeeID string) (performance.PerformanceResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(performance.PerformanceResponse), args.Error(1)
}

func (m *PerformanceService) Upsert(ctx context.Context, employeeID string, req performance.UpsertPerformanceRequest) (performance.PerformanceResponse, error) {
	args := m.Called(ctx, employeeID, req)
	return args.Get(0).(performance.PerformanceResponse), args.Error(1)
}

func (m *PerformanceService) SetSkill(ctx context.Context, employeeID string, req performance.SkillScoreRequest) (performance.PerformanceResponse, error) {
	args := m.Called(ctx, employeeID, req)
	return args.Get(0).(performance.PerformanceResponse), args.Error(1)
}

func (m *PerformanceService) DeleteSkill(ctx context.Context, skillScoreID string) error {
	return m.Called(ctx, skillScoreID).Error(0)
}

func (m *PerformanceService) AddFeedback(ctx context.Context, employeeID string, req performance.FeedbackRequest) (performance.PerformanceResponse, error) {
	args := m.Called(ctx, employeeID, req)
	return args.Get(0).(performance.PerformanceResponse), args.Error(1)
}

func (m *PerformanceService) DeleteFeedback(ctx context.Context, feedbackID string) error {
	return m.Called(ctx, feedbackID).Error(0)
}

type ProjectService struct{ mock.Mock }

func (m *ProjectService) MyProjects(ctx context.Context, employeeID string) (project.MyProjectsResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(project.MyProjectsResponse), args.Error(1)
}

func (m *ProjectService) MyProject(ctx context.Context, employeeID, projectID string) (project.ProjectResponse, error) {
	args := m.Called(ctx, employeeID, projectID)
	return args.Get(0).(project.ProjectResponse), args.Error(1)
}

func (m *ProjectService) List(ctx context.Context, filter project.ProjectFilter) (project.ListProjectResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(project.ListProjectResponse), args.Error(1)
}

func (m *ProjectService) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(project.ProjectResponse), args.Error(1)
}

func (m *ProjectService) Create(ctx context.Context, assignedBy string, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	args := m.Called(ctx, assignedBy, req)
	return args.Get(0).(project.ProjectResponse), args.Error(1)
}

func (m *ProjectService) Update(ctx context.Context, id string, assignedBy string, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	args := m.Called(ctx, id, assignedBy, req)
	return args.Get(0).(project.ProjectResponse), args.Error(1)
}

func (m *ProjectService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type DocumentService struct{ mock.Mock }

func (m *DocumentService) Upload(ctx context.Context, req document.UploadDocumentRequest, file io.Reader) (document.DocumentResponse, error) {
	args := m.Called(ctx, req, file)
	return args.Get(0).(document.DocumentResponse), args.Error(1)
}

func (m *DocumentService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *DocumentService) ListForEmployee(ctx context.Context, employeeID string) ([]document.CategoryGroup, error) {
	args := m.Called(ctx, employeeID)
	groups, _ := args.Get(0).([]document.CategoryGroup)
	return groups, args.Error(1)
}

func (m *DocumentService) Download(ctx context.Context, employeeID, documentID string) (document.Download, error) {
	args := m.Called(ctx, employeeID, documentID)
	return args.Get(0).(document.Download), args.Error(1)
}

type DashboardService struct{ mock.Mock }

func (m *DashboardService) EmployeeDashboard(ctx context.Context, employeeID string) (*dashboard.EmployeeDashboardResponse, error) {
	args := m.Called(ctx, employeeID)
	resp, _ := args.Get(0).(*dashboard.EmployeeDashboardResponse)
	return resp, args.Error(1)
}

func (m *DashboardService) AdminDashboard(ctx context.Context) (*dashboard.AdminDashboardResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dashboard.AdminDashboardResponse)
	return resp, args.Error(1)
}

type DashboardCache struct{ mock.Mock }

func (m *DashboardCache) InvalidateAdmin(ctx context.Context) {
	m.Called(ctx)
}
