package payroll

import (
	"context"
)

type PayrollRepository interface {
	Create(ctx context.Context, record Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	Update(ctx context.Context, record Payroll) (Payroll, error)
	Delete(ctx context.Context, id string) error
	// ListByEmployee returns records newest month first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollWithEmployee, int64, error)
	UpdatePayslipPath(ctx context.Context, id string, path string) error
}

type PayrollWithEmployee struct {
	Payroll
	EmployeeCode string
	EmployeeName string
}
