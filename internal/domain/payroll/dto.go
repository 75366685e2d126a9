package payroll

import (
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PayrollRequest is used for both create and update.
type PayrollRequest struct {
	EmployeeID  string          `json:"employee_id" validate:"required"`
	Month       string          `json:"month" validate:"required"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"net_pay"`

	month time.Time
}

func (r *PayrollRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Month != "" {
		var ok bool
		if r.month, ok = validator.IsValidMonth(r.Month); !ok {
			if d, dateOK := validator.IsValidDate(r.Month); dateOK {
				r.month = FirstOfMonth(d)
			} else {
				errs.Add("month", "month must be in YYYY-MM format")
			}
		}
	}

	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"gross_salary", r.GrossSalary},
		{"deductions", r.Deductions},
		{"net_pay", r.NetPay},
	} {
		if f.value.IsNegative() {
			errs.Add(f.name, f.name+" must not be negative")
		}
		if f.value.GreaterThanOrEqual(decimal.New(1, 8)) {
			errs.Add(f.name, f.name+" must be less than 100000000")
		}
	}

	return errs.OrNil()
}

// ToEntity converts a validated request. Amounts are rounded to cents.
func (r *PayrollRequest) ToEntity() Payroll {
	return Payroll{
		EmployeeID:  r.EmployeeID,
		Month:       r.month,
		GrossSalary: r.GrossSalary.Round(2),
		Deductions:  r.Deductions.Round(2),
		NetPay:      r.NetPay.Round(2),
	}
}

type PayrollFilter struct {
	EmployeeID string
	Page       int
	Limit      int
}

func (f *PayrollFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f PayrollFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type PayrollResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeCode   string          `json:"employee_code,omitempty"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	Month          string          `json:"month"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	Deductions     decimal.Decimal `json:"deductions"`
	NetPay         decimal.Decimal `json:"net_pay"`
	ComputedNetPay decimal.Decimal `json:"computed_net_pay"`
	NetPayMismatch bool            `json:"net_pay_mismatch"`
	HasPayslip     bool            `json:"has_payslip"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		Month:          p.Month.Format("2006-01"),
		GrossSalary:    p.GrossSalary,
		Deductions:     p.Deductions,
		NetPay:         p.NetPay,
		ComputedNetPay: p.ComputedNetPay(),
		NetPayMismatch: p.NetPayMismatch(),
		HasPayslip:     p.PayslipPath != nil,
	}
}

type ListPayrollResponse struct {
	Payrolls []PayrollResponse `json:"payrolls"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type MyPayrollResponse struct {
	Records    []PayrollResponse `json:"records"`
	Current    *PayrollResponse  `json:"current"`
	YTDEarning decimal.Decimal   `json:"ytd_earnings"`
}

// Payslip is a rendered slip ready for download.
type Payslip struct {
	Filename    string
	ContentType string
	Content     []byte
}
