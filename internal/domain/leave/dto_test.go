package leave

import (
	"testing"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SubmitLeaveRequest {
	return SubmitLeaveRequest{
		LeaveType:    "Annual",
		NumberOfDays: 3,
		StartDate:    "2025-03-10",
		EndDate:      "2025-03-12",
		Reason:       "Family trip",
	}
}

func TestSubmitLeaveRequest_Validate_Success(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())

	entity := req.ToEntity("emp-1")
	assert.Equal(t, StatusPending, entity.Status)
	assert.Equal(t, LeaveTypeAnnual, entity.LeaveType)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), entity.StartDate)
}

func TestSubmitLeaveRequest_Validate_SameDay(t *testing.T) {
	req := validRequest()
	req.EndDate = req.StartDate
	req.NumberOfDays = 1
	assert.NoError(t, req.Validate())
}

func TestSubmitLeaveRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *SubmitLeaveRequest)
		field  string
	}{
		{"unknown type", func(r *SubmitLeaveRequest) { r.LeaveType = "Vacation" }, "leave_type"},
		{"missing type", func(r *SubmitLeaveRequest) { r.LeaveType = "" }, "leave_type"},
		{"zero days", func(r *SubmitLeaveRequest) { r.NumberOfDays = 0 }, "number_of_days"},
		{"negative days", func(r *SubmitLeaveRequest) { r.NumberOfDays = -2 }, "number_of_days"},
		{"start after end", func(r *SubmitLeaveRequest) { r.StartDate = "2025-03-20" }, "end_date"},
		{"unparseable start", func(r *SubmitLeaveRequest) { r.StartDate = "10-03-2025" }, "start_date"},
		{"blank reason", func(r *SubmitLeaveRequest) { r.Reason = "   " }, "reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestToBalanceResponses_Order(t *testing.T) {
	b := Balances{LeaveTypeAnnual: 10, LeaveTypeSick: 8, LeaveTypePersonal: 5, LeaveTypeMaternity: 90, LeaveTypeEmergency: -1}
	out := ToBalanceResponses(b)

	require.Len(t, out, 5)
	assert.Equal(t, "Annual", out[0].LeaveType)
	assert.Equal(t, 8, out[0].Used)
	assert.Equal(t, "Emergency", out[4].LeaveType)
	assert.Equal(t, -1, out[4].Remaining)
	assert.Equal(t, 6, out[4].Used)
}

func TestLeaveFilter_Validate(t *testing.T) {
	f := LeaveFilter{Status: "Pending"}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)

	assert.Error(t, (&LeaveFilter{Status: "Cancelled"}).Validate())
}
