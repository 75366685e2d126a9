package payroll

import (
	"testing"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayroll_NetPayMismatch(t *testing.T) {
	p := Payroll{
		GrossSalary: decimal.RequireFromString("5000.00"),
		Deductions:  decimal.RequireFromString("750.50"),
		NetPay:      decimal.RequireFromString("4249.50"),
	}
	assert.True(t, p.ComputedNetPay().Equal(decimal.RequireFromString("4249.50")))
	assert.False(t, p.NetPayMismatch())

	p.NetPay = decimal.RequireFromString("4300")
	assert.True(t, p.NetPayMismatch())
}

func TestYearToDate(t *testing.T) {
	records := []Payroll{
		{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), GrossSalary: decimal.NewFromInt(1000)},
		{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), GrossSalary: decimal.RequireFromString("1200.25")},
		{Month: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), GrossSalary: decimal.NewFromInt(900)},
	}

	assert.Equal(t, "2200.25", YearToDate(records, 2025).StringFixed(2))
	assert.True(t, YearToDate(nil, 2025).IsZero())
}

func TestPayrollRequest_Validate(t *testing.T) {
	req := PayrollRequest{
		EmployeeID:  "emp-1",
		Month:       "2025-03",
		GrossSalary: decimal.RequireFromString("5000"),
		Deductions:  decimal.RequireFromString("500.555"),
		NetPay:      decimal.RequireFromString("4499.45"),
	}
	require.NoError(t, req.Validate())

	entity := req.ToEntity()
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), entity.Month)
	assert.Equal(t, "500.56", entity.Deductions.StringFixed(2))

	// A full date is normalized to the first of its month.
	req.Month = "2025-03-17"
	require.NoError(t, req.Validate())
	assert.Equal(t, 1, req.ToEntity().Month.Day())

	bad := PayrollRequest{Month: "March", GrossSalary: decimal.NewFromInt(-1)}
	err := bad.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "month")
	assert.Contains(t, fields, "gross_salary")
}
