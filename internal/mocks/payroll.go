package mocks

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/mock"
)

type PayrollRepository struct{ mock.Mock }

func (m *PayrollRepository) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(payroll.Payroll), args.Error(1)
}

func (m *PayrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.Payroll), args.Error(1)
}

func (m *PayrollRepository) Update(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(payroll.Payroll), args.Error(1)
}

func (m *PayrollRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PayrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]payroll.Payroll), args.Error(1)
}

func (m *PayrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollWithEmployee, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.PayrollWithEmployee), args.Get(1).(int64), args.Error(2)
}

func (m *PayrollRepository) UpdatePayslipPath(ctx context.Context, id string, path string) error {
	return m.Called(ctx, id, path).Error(0)
}
