package employee

import (
	"testing"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEmployeeCode(t *testing.T) {
	assert.Equal(t, "EM2025001", FormatEmployeeCode(2025, 1))
	assert.Equal(t, "EM2025042", FormatEmployeeCode(2025, 42))
	assert.Equal(t, "EM20251000", FormatEmployeeCode(2025, 1000))
}

func TestTemporaryPassword(t *testing.T) {
	assert.Equal(t, "345678", TemporaryPassword("+91 9912345678"))
	assert.Equal(t, "12345", TemporaryPassword("12345"))
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	email := "asha@example.com"
	req := CreateEmployeeRequest{FullName: "  Asha Rao ", Phone: "9912345678", Email: &email}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Asha Rao", req.FullName)

	badEmail := "nope"
	badDate := "01/02/2024"
	bad := CreateEmployeeRequest{Phone: "12ab", Email: &badEmail, JoiningDate: &badDate}
	err := bad.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "joining_date")
}

func TestEmployeeFilter_Normalize(t *testing.T) {
	f := EmployeeFilter{Page: 0, Limit: 500, Query: " asha "}
	f.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, "asha", f.Query)
	assert.Equal(t, 0, f.Offset())

	f = EmployeeFilter{Page: 3, Limit: 10}
	f.Normalize()
	assert.Equal(t, 20, f.Offset())
}

func TestSetActiveRequest_Validate(t *testing.T) {
	assert.Error(t, (&SetActiveRequest{}).Validate())
	assert.NoError(t, (&SetActiveRequest{EmployeeIDs: []string{"a"}, Active: true}).Validate())
}
