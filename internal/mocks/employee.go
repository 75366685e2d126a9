package mocks

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/mock"
)

type EmployeeRepository struct{ mock.Mock }

func (m *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	args := m.Called(ctx, employeeCode)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]employee.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *EmployeeRepository) ListDepartments(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) UpdatePassword(ctx context.Context, id string, passwordHash string, firstLogin bool) error {
	return m.Called(ctx, id, passwordHash, firstLogin).Error(0)
}

func (m *EmployeeRepository) UpdateAvatar(ctx context.Context, id string, avatarPath string) error {
	return m.Called(ctx, id, avatarPath).Error(0)
}

func (m *EmployeeRepository) SetActive(ctx context.Context, ids []string, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EmployeeRepository) ListNames(ctx context.Context, ids []string) (map[string]string, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[string]string), args.Error(1)
}

type CodeCounterRepository struct{ mock.Mock }

func (m *CodeCounterRepository) NextSequence(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

// Transactor runs fn inline on the caller's context.
type Transactor struct{ mock.Mock }

func (m *Transactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}
