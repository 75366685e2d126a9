package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this employee and month")
	ErrPayslipNotAvailable        = errors.New("payslip not available")
	ErrUnsupportedPayslipType     = errors.New("payslip must be a PDF or text file")
)
