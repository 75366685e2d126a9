package payroll

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
)

type PayrollService interface {
	Create(ctx context.Context, req PayrollRequest) (PayrollResponse, error)
	Update(ctx context.Context, id string, req PayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	AttachPayslip(ctx context.Context, id string, file io.Reader, filename string) (PayrollResponse, error)

	MyPayroll(ctx context.Context, employeeID string) (MyPayrollResponse, error)
	YearToDate(ctx context.Context, employeeID string) (decimal.Decimal, error)
	// Payslip returns the uploaded slip, or a generated text slip when none was attached.
	// employeeID restricts access to the owner; pass "" for back-office callers.
	Payslip(ctx context.Context, id string, employeeID string) (Payslip, error)
}
