package attendance

import (
	"strings"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/utils"
	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       string  `json:"status"`
	WorkedHours  *string `json:"worked_hours"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
	if a.CheckIn != nil {
		s := a.CheckIn.String()
		resp.CheckIn = &s
	}
	if a.CheckOut != nil {
		s := a.CheckOut.String()
		resp.CheckOut = &s
	}
	if d, ok := a.Worked(); ok && d >= 0 {
		s := utils.FormatHoursMinutes(d)
		resp.WorkedHours = &s
	}
	return resp
}

// CheckInResponse reports whether the action changed anything; repeated
// check-ins and check-outs are accepted but leave the first timestamp.
type CheckInResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Applied    bool               `json:"applied"`
}

type SummaryResponse struct {
	EmployeeID        string    `json:"employee_id"`
	ReferenceDate     string    `json:"reference_date"`
	MonthRecords      int       `json:"month_records"`
	TotalPresent      int       `json:"total_present"`
	LateDays          int       `json:"late_days"`
	TotalAbsent       int       `json:"total_absent"`
	AttendancePercent float64   `json:"attendance_percent"`
	WeekHours         string    `json:"week_hours"`
	WeekDaysPresent   int       `json:"week_days_present"`
	WeekTotalDays     int       `json:"week_total_days"`
	Anomalies         []Anomaly `json:"anomalies,omitempty"`
}

func ToSummaryResponse(s MonthlySummary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:        s.EmployeeID,
		ReferenceDate:     s.ReferenceDate.Format("2006-01-02"),
		MonthRecords:      s.MonthRecords,
		TotalPresent:      s.TotalPresent,
		LateDays:          s.LateDays,
		TotalAbsent:       s.TotalAbsent,
		AttendancePercent: s.AttendancePercent,
		WeekHours:         s.WeekHours,
		WeekDaysPresent:   s.WeekDaysPresent,
		WeekTotalDays:     s.WeekTotalDays,
		Anomalies:         s.Anomalies,
	}
}

type MyAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Summary SummaryResponse      `json:"summary"`
}

// MyAttendanceFilter bounds the employee history view. Both dates default
// relative to today when omitted.
type MyAttendanceFilter struct {
	StartDate string
	EndDate   string
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := time.Time{}, true
	end, endOK := time.Time{}, true
	if f.StartDate != "" {
		if start, startOK = validator.IsValidDate(f.StartDate); !startOK {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != "" {
		if end, endOK = validator.IsValidDate(f.EndDate); !endOK {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if f.StartDate != "" && f.EndDate != "" && startOK && endOK && start.After(end) {
		errs.Add("start_date", "start_date must not be after end_date")
	}

	return errs.OrNil()
}

type AttendanceFilter struct {
	EmployeeCode string
	Date         string
	Status       string
	Page         int
	Limit        int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs.Add("limit", "limit must not exceed 100")
	}

	f.EmployeeCode = strings.TrimSpace(f.EmployeeCode)
	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if f.Status != "" && !Status(f.Status).Valid() {
		errs.Add("status", ErrInvalidStatus.Error())
	}

	return errs.OrNil()
}

func (f AttendanceFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

// UpdateAttendanceRequest is an administrative correction. Nil fields are
// kept; an empty string clears a timestamp.
type UpdateAttendanceRequest struct {
	Status   *string `json:"status,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs.Add("status", ErrInvalidStatus.Error())
	}
	if r.CheckIn != nil && *r.CheckIn != "" && !validator.IsValidTimeOfDay(*r.CheckIn) {
		errs.Add("check_in", "check_in must be in HH:MM or HH:MM:SS format")
	}
	if r.CheckOut != nil && *r.CheckOut != "" && !validator.IsValidTimeOfDay(*r.CheckOut) {
		errs.Add("check_out", "check_out must be in HH:MM or HH:MM:SS format")
	}

	return errs.OrNil()
}

// Apply merges the correction into record and enforces check_out > check_in.
func (r UpdateAttendanceRequest) Apply(record Attendance) (Attendance, error) {
	if r.Status != nil {
		record.Status = Status(*r.Status)
	}

	var err error
	if record.CheckIn, err = mergeTime(record.CheckIn, r.CheckIn); err != nil {
		return record, err
	}
	if record.CheckOut, err = mergeTime(record.CheckOut, r.CheckOut); err != nil {
		return record, err
	}

	if d, ok := record.Worked(); ok && d <= 0 {
		return record, ErrInvalidTimeRange
	}
	return record, nil
}

func mergeTime(current *TimeOfDay, input *string) (*TimeOfDay, error) {
	if input == nil {
		return current, nil
	}
	if *input == "" {
		return nil, nil
	}
	t, err := ParseTimeOfDay(*input)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
