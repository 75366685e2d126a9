package leave

import (
	"strings"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveType    string `json:"leave_type"`
	NumberOfDays int    `json:"number_of_days"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`

	startDate time.Time
	endDate   time.Time
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: Annual, Sick, Personal, Maternity, Emergency",
		})
	}

	if r.NumberOfDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "number_of_days",
			Message: "number_of_days must be greater than 0",
		})
	}

	var startOK, endOK bool
	if r.startDate, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if r.endDate, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && r.startDate.After(r.endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be on or after start_date",
		})
	}

	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds a Pending request. Call only after Validate succeeded.
func (r *SubmitLeaveRequest) ToEntity(employeeID string) LeaveRequest {
	return LeaveRequest{
		EmployeeID:   employeeID,
		LeaveType:    LeaveType(r.LeaveType),
		NumberOfDays: r.NumberOfDays,
		StartDate:    r.startDate,
		EndDate:      r.endDate,
		Reason:       r.Reason,
		Status:       StatusPending,
	}
}

type LeaveFilter struct {
	Status string
	Page   int
	Limit  int
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != "" && !Status(f.Status).Valid() {
		errs.Add("status", "status must be one of: Pending, Approved, Rejected")
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return errs.OrNil()
}

func (f LeaveFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	NumberOfDays int     `json:"number_of_days"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		LeaveType:    string(r.LeaveType),
		NumberOfDays: r.NumberOfDays,
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Reason:       r.Reason,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		s := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &s
	}
	return resp
}

type BalanceResponse struct {
	LeaveType   string `json:"leave_type"`
	Entitlement int    `json:"entitlement"`
	Used        int    `json:"used"`
	Remaining   int    `json:"remaining"`
}

// ToBalanceResponses renders balances in the fixed category order.
func ToBalanceResponses(b Balances) []BalanceResponse {
	out := make([]BalanceResponse, 0, len(LeaveTypes))
	for _, t := range LeaveTypes {
		out = append(out, BalanceResponse{
			LeaveType:   string(t),
			Entitlement: Entitlements[t],
			Used:        Entitlements[t] - b[t],
			Remaining:   b[t],
		})
	}
	return out
}

type MyLeaveResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Balances []BalanceResponse      `json:"balances"`
}

type ListLeaveResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
}

// DecisionResponse carries applied=false when the request was already in the
// requested state.
type DecisionResponse struct {
	Request LeaveRequestResponse `json:"request"`
	Applied bool                 `json:"applied"`
}
