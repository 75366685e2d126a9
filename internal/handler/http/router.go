package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/managely-hr/hr-backend-go/internal/pkg/jwt"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth        AuthHandler
	Settings    SettingsHandler
	Employee    EmployeeHandler
	Profile     ProfileHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Performance PerformanceHandler
	Project     ProjectHandler
	Document    DocumentHandler
	Dashboard   DashboardHandler
}

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// UploadsDir is served under /uploads for avatars and shareable
	// documents. Empty disables static serving.
	UploadsDir string
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.UploadsDir != "" {
		files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Handle("/uploads/avatars/*", files)
		r.Handle("/uploads/documents/*", files)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json", "multipart/form-data"))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/login/employee", h.Auth.LoginEmployee)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Use(middleware.RequireEmployee)
				r.Post("/first-login/password", h.Auth.ChangeFirstLoginPassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireEmployee)
				mountSelfService(r, h)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				mountBackOffice(r, h)
			})
		})
	})
	return r
}

func mountSelfService(r chi.Router, h Handlers) {
	r.With(middleware.RequirePermission(user.PermissionDashboardViewOwn)).Get("/dashboard", h.Dashboard.EmployeeDashboard)

	r.Route("/profile", func(r chi.Router) {
		r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/", h.Profile.GetProfile)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionEditOwnProfile))
			r.Put("/", h.Profile.UpdateProfile)
			r.Post("/avatar", h.Profile.UploadAvatar)
		})
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
			r.Get("/today", h.Attendance.Today)
			r.Get("/summary", h.Attendance.Summary)
			r.Get("/my", h.Attendance.MyAttendance)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionAttendanceCheckIn))
			r.Post("/check-in", h.Attendance.CheckIn)
			r.Post("/check-out", h.Attendance.CheckOut)
		})
	})

	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.Submit)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionLeaveViewOwn))
			r.Get("/my", h.Leave.MyRequests)
			r.Get("/balances", h.Leave.Balances)
		})
	})

	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionPayrollViewOwn))
		r.Get("/my", h.Payroll.MyPayroll)
		r.Get("/{id}/slip", h.Payroll.MyPayslip)
	})

	r.With(middleware.RequirePermission(user.PermissionPerformanceOwn)).Get("/performance/my", h.Performance.MyPerformance)

	r.Route("/projects", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionProjectViewOwn))
		r.Get("/my", h.Project.MyProjects)
		r.Get("/my/{id}", h.Project.MyProject)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionDocumentViewOwn))
		r.Get("/my", h.Document.MyDocuments)
		r.Get("/{id}/download", h.Document.Download)
	})
}

func mountBackOffice(r chi.Router, h Handlers) {
	r.With(middleware.RequirePermission(user.PermissionDashboardView)).Get("/dashboard", h.Dashboard.AdminDashboard)

	r.Route("/settings", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
		r.Get("/profile", h.Settings.GetProfile)
		r.Put("/profile", h.Settings.UpdateProfile)
		r.Put("/password", h.Settings.ChangePassword)
	})

	r.Route("/employees", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
			r.Get("/", h.Employee.ListEmployees)
			r.Get("/{id}", h.Employee.GetEmployee)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
			r.Post("/", h.Employee.CreateEmployee)
			r.Put("/status", h.Employee.SetActive)
			r.Put("/{id}", h.Employee.UpdateEmployee)
			r.Post("/{id}/activate", h.Employee.ActivateEmployee)
			r.Post("/{id}/deactivate", h.Employee.DeactivateEmployee)
			r.Post("/{id}/message", h.Employee.MessageEmployee)
		})
		r.With(middleware.RequirePermission(user.PermissionDocumentManage)).Get("/{id}/documents", h.Document.ListForEmployee)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.List)
		r.With(middleware.RequirePermission(user.PermissionAttendanceManage)).Put("/{id}", h.Attendance.Correct)
	})

	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.List)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
			r.Post("/{id}/approve", h.Leave.Approve)
			r.Post("/{id}/reject", h.Leave.Reject)
		})
	})

	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
		r.Get("/", h.Payroll.List)
		r.Post("/", h.Payroll.Create)
		r.Get("/{id}", h.Payroll.Get)
		r.Put("/{id}", h.Payroll.Update)
		r.Delete("/{id}", h.Payroll.Delete)
		r.Post("/{id}/payslip", h.Payroll.AttachPayslip)
		r.Get("/{id}/slip", h.Payroll.DownloadPayslip)
	})

	r.Route("/performance", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionPerformanceManage))
		r.Get("/", h.Performance.ListRatings)
		r.Delete("/skills/{id}", h.Performance.DeleteSkill)
		r.Delete("/feedback/{id}", h.Performance.DeleteFeedback)
		r.Get("/{employeeID}", h.Performance.Detail)
		r.Put("/{employeeID}", h.Performance.Upsert)
		r.Post("/{employeeID}/skills", h.Performance.SetSkill)
		r.Post("/{employeeID}/feedback", h.Performance.AddFeedback)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionProjectManage))
		r.Get("/", h.Project.List)
		r.Post("/", h.Project.Create)
		r.Get("/{id}", h.Project.Get)
		r.Put("/{id}", h.Project.Update)
		r.Delete("/{id}", h.Project.Delete)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionDocumentManage))
		r.Post("/", h.Document.Upload)
		r.Delete("/{id}", h.Document.Delete)
	})
}
