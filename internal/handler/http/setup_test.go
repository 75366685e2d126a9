package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/mocks"
	"github.com/managely-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID = "0190a5d2-0000-7000-8000-000000000001"
	testAdminID    = "0190a5d2-0000-7000-8000-0000000000a1"
)

type testServer struct {
	router *chi.Mux
	jwt    jwt.Service

	auth        *mocks.AuthService
	settings    *mocks.SettingsService
	employees   *mocks.EmployeeService
	profile     *mocks.ProfileService
	attendance  *mocks.AttendanceService
	leave       *mocks.LeaveService
	payroll     *mocks.PayrollService
	performance *mocks.PerformanceService
	projects    *mocks.ProjectService
	documents   *mocks.DocumentService
	dashboard   *mocks.DashboardService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	jwtService, err := jwt.NewJWTService("test-secret", "15m", "24h", nil)
	require.NoError(t, err)

	s := &testServer{
		jwt:         jwtService,
		auth:        &mocks.AuthService{},
		settings:    &mocks.SettingsService{},
		employees:   &mocks.EmployeeService{},
		profile:     &mocks.ProfileService{},
		attendance:  &mocks.AttendanceService{},
		leave:       &mocks.LeaveService{},
		payroll:     &mocks.PayrollService{},
		performance: &mocks.PerformanceService{},
		projects:    &mocks.ProjectService{},
		documents:   &mocks.DocumentService{},
		dashboard:   &mocks.DashboardService{},
	}

	s.router = NewRouter(RouterConfig{}, jwtService, Handlers{
		Auth:        NewAuthHandler(jwtService, s.auth),
		Settings:    NewSettingsHandler(s.settings),
		Employee:    NewEmployeeHandler(s.employees),
		Profile:     NewProfileHandler(s.profile),
		Attendance:  NewAttendanceHandler(s.attendance),
		Leave:       NewLeaveHandler(s.leave),
		Payroll:     NewPayrollHandler(s.payroll),
		Performance: NewPerformanceHandler(s.performance),
		Project:     NewProjectHandler(s.projects),
		Document:    NewDocumentHandler(s.documents),
		Dashboard:   NewDashboardHandler(s.dashboard),
	})

	t.Cleanup(func() {
		s.auth.AssertExpectations(t)
		s.employees.AssertExpectations(t)
		s.attendance.AssertExpectations(t)
		s.leave.AssertExpectations(t)
		s.payroll.AssertExpectations(t)
		s.performance.AssertExpectations(t)
		s.projects.AssertExpectations(t)
		s.documents.AssertExpectations(t)
		s.dashboard.AssertExpectations(t)
	})
	return s
}

func (s *testServer) token(t *testing.T, claims jwt.AccessClaims) string {
	t.Helper()
	token, _, err := s.jwt.GenerateAccessToken(claims)
	require.NoError(t, err)
	return token
}

func (s *testServer) employeeToken(t *testing.T) string {
	employeeID := testEmployeeID
	return s.token(t, jwt.AccessClaims{
		SubjectID:   testEmployeeID,
		SubjectType: "employee",
		EmployeeID:  &employeeID,
		Role:        user.RoleEmployee,
		Name:        "Asha Rao",
	})
}

func (s *testServer) staffToken(t *testing.T, role user.Role) string {
	return s.token(t, jwt.AccessClaims{
		SubjectID:   testAdminID,
		SubjectType: "user",
		Role:        role,
		Name:        "Priya Menon",
	})
}

// do sends a JSON request. A nil body sends no payload.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.serve(req)
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalItems int64 `json:"total_items"`
		TotalPages int   `json:"total_pages"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func newJSONRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// decodeField pulls one top-level key out of a JSON object.
func decodeField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	value, ok := fields[key]
	require.True(t, ok, "missing field %q in %s", key, raw)
	return value
}
