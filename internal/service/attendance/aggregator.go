package attendance

import (
	"fmt"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/pkg/utils"
)

// WeekDays is the length of the trailing window ending on the reference date.
const WeekDays = 7

// WeekStart returns the first day of the trailing week ending on ref.
func WeekStart(ref time.Time) time.Time {
	return dateOnly(ref).AddDate(0, 0, -(WeekDays - 1))
}

// MonthStart returns the first day of ref's month.
func MonthStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// Summarize computes the monthly and weekly attendance figures for one
// employee. records may span any range; only the month of ref and the
// window [ref-6, ref] are considered. Inconsistent data is clamped or
// skipped and reported in Anomalies.
func Summarize(employeeID string, ref time.Time, records []attendance.Attendance) attendance.MonthlySummary {
	ref = dateOnly(ref)
	weekFrom := WeekStart(ref)

	s := attendance.MonthlySummary{
		EmployeeID:    employeeID,
		ReferenceDate: ref,
	}

	for _, r := range records {
		// DATE columns come back as UTC midnight; keep the calendar day.
		day := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, ref.Location())

		if day.Year() == ref.Year() && day.Month() == ref.Month() {
			s.MonthRecords++
			switch r.Status {
			case attendance.StatusPresent:
				s.TotalPresent++
			case attendance.StatusLate:
				s.LateDays++
			}
		}

		if day.Before(weekFrom) || day.After(ref) {
			continue
		}
		s.WeekTotalDays++
		if r.Status == attendance.StatusPresent {
			s.WeekDaysPresent++
		}

		worked, ok := r.Worked()
		if !ok {
			continue
		}
		if worked < 0 {
			s.Anomalies = append(s.Anomalies, attendance.Anomaly{
				Kind:         attendance.AnomalyCheckOutBeforeIn,
				AttendanceID: r.ID,
				Date:         day.Format("2006-01-02"),
				Detail:       fmt.Sprintf("check_out %s is before check_in %s", r.CheckOut, r.CheckIn),
			})
			continue
		}
		s.WeekWorked += worked
	}

	s.TotalAbsent = s.MonthRecords - s.TotalPresent - s.LateDays
	if s.TotalAbsent < 0 {
		// Cannot happen with a consistent record set.
		s.Anomalies = append(s.Anomalies, attendance.Anomaly{
			Kind:   attendance.AnomalyNegativeAbsent,
			Detail: fmt.Sprintf("month has %d records but %d present and %d late", s.MonthRecords, s.TotalPresent, s.LateDays),
		})
		s.TotalAbsent = 0
	}

	if s.MonthRecords > 0 {
		s.AttendancePercent = utils.RoundRatio(int64(s.TotalPresent)*100, int64(s.MonthRecords), 1)
	}
	s.WeekHours = utils.FormatHoursMinutes(s.WeekWorked)

	return s
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
