package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one month's pay record. NetPay is entered by the administrator
// and kept as given; ComputedNetPay exposes gross minus deductions next to it.
type Payroll struct {
	ID          string
	EmployeeID  string
	Month       time.Time // first day of the month
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	PayslipPath *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Payroll) ComputedNetPay() decimal.Decimal {
	return p.GrossSalary.Sub(p.Deductions)
}

// NetPayMismatch reports whether the stored net pay disagrees with
// gross - deductions at cent precision.
func (p Payroll) NetPayMismatch() bool {
	return !p.NetPay.Round(2).Equal(p.ComputedNetPay().Round(2))
}

// FirstOfMonth normalizes t to 00:00 on day 1 in its own location.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// YearToDate sums gross salary over records whose month falls in year.
func YearToDate(records []Payroll, year int) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Month.Year() == year {
			total = total.Add(r.GrossSalary)
		}
	}
	return total
}
