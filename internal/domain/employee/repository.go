package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListDepartments(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string, firstLogin bool) error
	UpdateAvatar(ctx context.Context, id string, avatarPath string) error
	// SetActive flips is_active for every id and returns how many rows changed.
	SetActive(ctx context.Context, ids []string, active bool) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	// ListNames maps ids to full names for list views.
	ListNames(ctx context.Context, ids []string) (map[string]string, error)
}

// CodeCounterRepository allocates per-year employee code sequences atomically.
type CodeCounterRepository interface {
	NextSequence(ctx context.Context, year int) (int, error)
}
