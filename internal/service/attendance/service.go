package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	location       *time.Location
	dashboardCache dashboard.CacheInvalidator
	now            func() time.Time
}

// NewAttendanceService builds the service; loc decides which calendar day
// "today" is. dashboardCache may be nil.
func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, loc *time.Location, dashboardCache dashboard.CacheInvalidator) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		location:             loc,
		dashboardCache:       dashboardCache,
		now:                  time.Now,
	}
}

// invalidateDashboard drops the admin overview, which counts today's check-ins.
func (a *AttendanceServiceImpl) invalidateDashboard(ctx context.Context) {
	if a.dashboardCache != nil {
		a.dashboardCache.InvalidateAdmin(ctx)
	}
}

func (a *AttendanceServiceImpl) localNow() time.Time {
	return a.now().In(a.location)
}

// calendarDay maps t to UTC midnight of its calendar date, the form DATE
// columns are written and read in.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetOrCreate(ctx, employeeID, calendarDay(a.localNow()))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return attendance.ToResponse(record), nil
}

// CheckIn implements attendance.AttendanceService. Only the first check-in of
// the day is stored.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	now := a.localNow()
	day := calendarDay(now)

	if _, err := a.AttendanceRepository.GetOrCreate(ctx, employeeID, day); err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	record, applied, err := a.AttendanceRepository.RecordCheckIn(ctx, employeeID, day, attendance.TimeOfDayFrom(now))
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}
	if applied {
		slog.Info("employee checked in", "employee_id", employeeID, "date", day.Format("2006-01-02"), "at", record.CheckIn)
		a.invalidateDashboard(ctx)
	}

	return attendance.CheckInResponse{Attendance: attendance.ToResponse(record), Applied: applied}, nil
}

// CheckOut implements attendance.AttendanceService. Only the first check-out
// after a check-in is stored.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	now := a.localNow()
	day := calendarDay(now)

	current, err := a.AttendanceRepository.GetOrCreate(ctx, employeeID, day)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if current.CheckIn == nil {
		return attendance.CheckInResponse{}, attendance.ErrNotCheckedIn
	}

	record, applied, err := a.AttendanceRepository.RecordCheckOut(ctx, employeeID, day, attendance.TimeOfDayFrom(now))
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}
	if applied {
		slog.Info("employee checked out", "employee_id", employeeID, "date", day.Format("2006-01-02"), "at", record.CheckOut)
		if worked, ok := record.Worked(); ok && worked < 0 {
			slog.Warn("check-out recorded before check-in", "attendance_id", record.ID, "check_in", record.CheckIn, "check_out", record.CheckOut)
		}
	}

	return attendance.CheckInResponse{Attendance: attendance.ToResponse(record), Applied: applied}, nil
}

// Summary implements attendance.AttendanceService. A zero reference means today.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, reference time.Time) (attendance.MonthlySummary, error) {
	if reference.IsZero() {
		reference = a.localNow()
	}
	ref := calendarDay(reference)

	from := MonthStart(ref)
	if ws := WeekStart(ref); ws.Before(from) {
		from = ws
	}
	to := MonthStart(ref).AddDate(0, 1, -1)

	records, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := Summarize(employeeID, ref, records)
	for _, anomaly := range summary.Anomalies {
		slog.Warn("attendance data inconsistency",
			"employee_id", employeeID,
			"kind", anomaly.Kind,
			"attendance_id", anomaly.AttendanceID,
			"date", anomaly.Date,
			"detail", anomaly.Detail,
		)
	}
	return summary, nil
}

// MyAttendance implements attendance.AttendanceService. The range defaults to
// the first of the current month through today.
func (a *AttendanceServiceImpl) MyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) (attendance.MyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	today := calendarDay(a.localNow())
	from, to := MonthStart(today), today
	if filter.StartDate != "" {
		from, _ = time.Parse("2006-01-02", filter.StartDate)
	}
	if filter.EndDate != "" {
		to, _ = time.Parse("2006-01-02", filter.EndDate)
	}
	if from.After(to) {
		return attendance.MyAttendanceResponse{Records: []attendance.AttendanceResponse{}}, nil
	}

	records, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary, err := a.Summary(ctx, employeeID, today)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	resp := attendance.MyAttendanceResponse{
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
		Summary: attendance.ToSummaryResponse(summary),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, attendance.ToResponse(r))
	}
	return resp, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}
	for _, r := range records {
		item := attendance.ToResponse(r.Attendance)
		item.EmployeeCode = r.EmployeeCode
		item.EmployeeName = r.EmployeeName
		resp.Attendances = append(resp.Attendances, item)
	}
	return resp, nil
}

// Correct implements attendance.AttendanceService. It bypasses the
// once-only rules of check-in and check-out.
func (a *AttendanceServiceImpl) Correct(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	corrected, err := req.Apply(record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.Update(ctx, corrected)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	slog.Info("attendance corrected", "attendance_id", id, "status", updated.Status)
	a.invalidateDashboard(ctx)
	return attendance.ToResponse(updated), nil
}
