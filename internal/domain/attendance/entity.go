package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// TimeOfDay is a wall-clock time as an offset from midnight.
type TimeOfDay time.Duration

func NewTimeOfDay(hour, min, sec int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute + time.Duration(sec)*time.Second)
}

// TimeOfDayFrom truncates t to the second and drops its date.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// ParseTimeOfDay accepts HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayFrom(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *TimeOfDay
	CheckOut   *TimeOfDay
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Worked returns check_out - check_in. ok is false when either side is
// missing. A negative duration means the stored times are inconsistent.
func (a Attendance) Worked() (d time.Duration, ok bool) {
	if a.CheckIn == nil || a.CheckOut == nil {
		return 0, false
	}
	return a.CheckOut.Duration() - a.CheckIn.Duration(), true
}

type AnomalyKind string

const (
	AnomalyNegativeAbsent   AnomalyKind = "negative_absent"
	AnomalyCheckOutBeforeIn AnomalyKind = "check_out_before_check_in"
)

// Anomaly is an inconsistency found in stored attendance data. It is reported
// alongside a summary instead of failing the computation.
type Anomaly struct {
	Kind         AnomalyKind `json:"kind"`
	AttendanceID string      `json:"attendance_id,omitempty"`
	Date         string      `json:"date,omitempty"`
	Detail       string      `json:"detail"`
}

// MonthlySummary is the aggregate over one employee's records for the month
// of a reference date plus the trailing week ending on it.
type MonthlySummary struct {
	EmployeeID        string
	ReferenceDate     time.Time
	MonthRecords      int
	TotalPresent      int
	LateDays          int
	TotalAbsent       int
	AttendancePercent float64
	WeekWorked        time.Duration
	WeekHours         string
	WeekDaysPresent   int
	WeekTotalDays     int
	Anomalies         []Anomaly
}
