package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/managely-hr/hr-backend-go/internal/config"
	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	appHTTP "github.com/managely-hr/hr-backend-go/internal/handler/http"
	"github.com/managely-hr/hr-backend-go/internal/pkg/cache"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
	"github.com/managely-hr/hr-backend-go/internal/pkg/email"
	"github.com/managely-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/managely-hr/hr-backend-go/internal/pkg/storage"
	"github.com/managely-hr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/managely-hr/hr-backend-go/internal/service/attendance"
	authService "github.com/managely-hr/hr-backend-go/internal/service/auth"
	dashboardService "github.com/managely-hr/hr-backend-go/internal/service/dashboard"
	documentService "github.com/managely-hr/hr-backend-go/internal/service/document"
	employeeService "github.com/managely-hr/hr-backend-go/internal/service/employee"
	"github.com/managely-hr/hr-backend-go/internal/service/file"
	leaveService "github.com/managely-hr/hr-backend-go/internal/service/leave"
	payrollService "github.com/managely-hr/hr-backend-go/internal/service/payroll"
	performanceService "github.com/managely-hr/hr-backend-go/internal/service/performance"
	projectService "github.com/managely-hr/hr-backend-go/internal/service/project"
	userService "github.com/managely-hr/hr-backend-go/internal/service/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Redis backs the admin dashboard cache and token revocation. Without it
	// both fall back to in-process behaviour.
	var (
		rdb             *redis.Client
		revocationStore jwt.RevocationStore
	)
	if cfg.Redis.Addr != "" {
		rdb, err = cache.ConnectRedisWithRetry(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, 5, 2*time.Second)
		if err != nil {
			return err
		}
		defer rdb.Close()
		revocationStore = jwt.NewRedisRevocationStore(rdb)
	} else {
		slog.Warn("REDIS_ADDR not set, dashboard caching disabled and token revocation is process-local")
	}

	jwtSvc, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, revocationStore)
	if err != nil {
		return fmt.Errorf("failed to initialize jwt service: %w", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize local storage: %w", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	emailSvc, err := email.NewEmailService(cfg.SMTP, strings.TrimRight(cfg.App.FrontendURL, "/")+"/login")
	if err != nil {
		return fmt.Errorf("failed to initialize email service: %w", err)
	}
	if cfg.SMTP.Host == "" {
		slog.Warn("SMTP_HOST not set, outgoing mail is logged and dropped")
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	codeCounterRepo := postgresql.NewCodeCounterRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	transactor := postgresql.NewTransactor(db)

	location := cfg.Location()
	jsonCache := cache.NewJSONCache(rdb)
	dashboardCache := dashboardService.NewCacheInvalidator(jsonCache)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtSvc, refreshTokenRepo)
	settingsSvc := userService.NewSettingsService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, codeCounterRepo, transactor, fileSvc, emailSvc, dashboardCache)
	profileSvc := employeeService.NewProfileService(employeeRepo, fileSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, location, dashboardCache)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, dashboardCache)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, fileSvc, location)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo, dashboardCache)
	projectSvc := projectService.NewProjectService(projectRepo, employeeRepo, dashboardCache)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo, fileSvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardService.Sources{
		Employees:          employeeRepo,
		Attendances:        attendanceRepo,
		Leaves:             leaveRequestRepo,
		Projects:           projectRepo,
		AttendanceService:  attendanceSvc,
		LeaveService:       leaveSvc,
		PayrollService:     payrollSvc,
		ProjectService:     projectSvc,
		PerformanceService: performanceSvc,
	}, jsonCache, location)

	if cfg.Bootstrap.AdminUsername != "" {
		created, err := authSvc.EnsureBootstrapAdmin(ctx, auth.BootstrapAdminRequest{
			Username: cfg.Bootstrap.AdminUsername,
			Password: cfg.Bootstrap.AdminPassword,
			Email:    cfg.Bootstrap.AdminEmail,
			FullName: cfg.Bootstrap.AdminFullName,
		})
		if err != nil {
			return fmt.Errorf("failed to bootstrap admin: %w", err)
		}
		if created {
			slog.Info("bootstrap admin created", "username", cfg.Bootstrap.AdminUsername)
		}
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: strings.Split(cfg.App.FrontendURL, ","),
		UploadsDir:     cfg.Storage.BasePath,
	}, jwtSvc, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtSvc, authSvc),
		Settings:    appHTTP.NewSettingsHandler(settingsSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Profile:     appHTTP.NewProfileHandler(profileSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Project:     appHTTP.NewProjectHandler(projectSvc),
		Document:    appHTTP.NewDocumentHandler(documentSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.App.Env, "timezone", location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
