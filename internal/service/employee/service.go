package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/pkg/email"
	"github.com/managely-hr/hr-backend-go/internal/repository/postgresql"
	"github.com/managely-hr/hr-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	employee.CodeCounterRepository
	transactor     postgresql.Transactor
	fileService    file.FileService
	emailService   email.EmailService
	dashboardCache dashboard.CacheInvalidator // may be nil
	bcryptCost     int
	now            func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	codeCounterRepo employee.CodeCounterRepository,
	transactor postgresql.Transactor,
	fileService file.FileService,
	emailService email.EmailService,
	dashboardCache dashboard.CacheInvalidator,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:    employeeRepo,
		CodeCounterRepository: codeCounterRepo,
		transactor:            transactor,
		fileService:           fileService,
		emailService:          emailService,
		dashboardCache:        dashboardCache,
		bcryptCost:            bcrypt.DefaultCost,
		now:                   time.Now,
	}
}

// Create implements employee.EmployeeService. The employee code is allocated
// from the per-year counter in the same transaction as the insert, so a failed
// insert does not burn a number.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	temporaryPassword := employee.TemporaryPassword(req.Phone)
	hash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), s.bcryptCost)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.Employee{
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            nonEmpty(req.Email),
		Department:       nonEmpty(req.Department),
		Designation:      nonEmpty(req.Designation),
		Role:             nonEmpty(req.Role),
		Address:          nonEmpty(req.Address),
		EmergencyContact: nonEmpty(req.EmergencyContact),
		PasswordHash:     string(hash),
		FirstLogin:       true,
		IsActive:         true,
	}
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		d, _ := time.Parse("2006-01-02", *req.JoiningDate)
		newEmployee.JoiningDate = &d
	}

	var created employee.Employee
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		year := s.now().Year()
		seq, err := s.CodeCounterRepository.NextSequence(txCtx, year)
		if err != nil {
			return fmt.Errorf("failed to allocate employee code: %w", err)
		}
		newEmployee.EmployeeCode = employee.FormatEmployeeCode(year, seq)

		created, err = s.EmployeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "employee_code", created.EmployeeCode)
	s.invalidateDashboard(ctx)

	if created.Email != nil {
		// The account exists either way; a mail failure is only reported.
		if err := s.emailService.SendWelcome(*created.Email, created.FullName, created.EmployeeCode, temporaryPassword); err != nil {
			slog.Warn("failed to send welcome email", "employee_id", created.ID, "error", err)
		}
	}

	return employee.CreateEmployeeResponse{
		Employee:          employee.ToResponse(created, s.fileService.URL),
		TemporaryPassword: temporaryPassword,
	}, nil
}

// invalidateDashboard drops the admin overview after the active headcount changes.
func (s *EmployeeServiceImpl) invalidateDashboard(ctx context.Context) {
	if s.dashboardCache != nil {
		s.dashboardCache.InvalidateAdmin(ctx)
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Normalize()

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	departments, err := s.EmployeeRepository.ListDepartments(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		Employees:   make([]employee.EmployeeResponse, 0, len(employees)),
		Departments: departments,
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employee.ToResponse(e, s.fileService.URL))
	}
	return resp, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e, s.fileService.URL), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated, s.fileService.URL), nil
}

// SetActive implements employee.EmployeeService. For a single id the caller
// learns why nothing changed.
func (s *EmployeeServiceImpl) SetActive(ctx context.Context, req employee.SetActiveRequest) (employee.SetActiveResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SetActiveResponse{}, err
	}

	updated, err := s.EmployeeRepository.SetActive(ctx, req.EmployeeIDs, req.Active)
	if err != nil {
		return employee.SetActiveResponse{}, fmt.Errorf("failed to update employee status: %w", err)
	}

	if updated == 0 && len(req.EmployeeIDs) == 1 {
		if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeIDs[0]); err != nil {
			return employee.SetActiveResponse{}, err
		}
		if req.Active {
			return employee.SetActiveResponse{}, employee.ErrEmployeeAlreadyActive
		}
		return employee.SetActiveResponse{}, employee.ErrEmployeeAlreadyInactive
	}

	slog.Info("employee status changed", "active", req.Active, "requested", len(req.EmployeeIDs), "updated", updated)
	if updated > 0 {
		s.invalidateDashboard(ctx)
	}
	return employee.SetActiveResponse{Updated: updated}, nil
}

// SendMessage implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SendMessage(ctx context.Context, id string, senderName string, req employee.MessageEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.Email == nil || strings.TrimSpace(*e.Email) == "" {
		return employee.ErrEmployeeHasNoEmail
	}

	if err := s.emailService.SendMessage(*e.Email, e.FullName, senderName, req.Subject, req.Message); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

type ProfileServiceImpl struct {
	employee.EmployeeRepository
	fileService file.FileService
}

func NewProfileService(employeeRepo employee.EmployeeRepository, fileService file.FileService) employee.ProfileService {
	return &ProfileServiceImpl{
		EmployeeRepository: employeeRepo,
		fileService:        fileService,
	}
}

// GetProfile implements employee.ProfileService.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e, s.fileService.URL), nil
}

// UpdateProfile implements employee.ProfileService.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, employeeID string, req employee.SelfUpdateRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, employeeID, req.ToUpdate())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated, s.fileService.URL), nil
}

// UploadAvatar implements employee.ProfileService. The previous file is
// removed once the new path is stored.
func (s *ProfileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, r io.Reader, filename string) (employee.EmployeeResponse, error) {
	current, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	path, err := s.fileService.UploadAvatar(ctx, employeeID, r, filename)
	if err != nil {
		if errors.Is(err, file.ErrUnsupportedFileType) || errors.Is(err, file.ErrInvalidImage) {
			return employee.EmployeeResponse{}, employee.ErrInvalidAvatar
		}
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.UpdateAvatar(ctx, employeeID, path); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save avatar: %w", err)
	}

	if current.AvatarPath != nil && *current.AvatarPath != path {
		if err := s.fileService.DeleteFile(ctx, *current.AvatarPath); err != nil {
			slog.Warn("failed to delete previous avatar", "employee_id", employeeID, "path", *current.AvatarPath, "error", err)
		}
	}

	current.AvatarPath = &path
	return employee.ToResponse(current, s.fileService.URL), nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
