package attendance

import (
	"testing"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

func newTestService(repo *mocks.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(repo, jakarta, nil).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func tod(h, m int) *attendance.TimeOfDay {
	t := attendance.NewTimeOfDay(h, m, 0)
	return &t
}

func TestAttendanceService_CheckIn_UsesLocalCalendarDay(t *testing.T) {
	repo := &mocks.AttendanceRepository{}
	// 2025-03-04 23:30 UTC is already 2025-03-05 06:30 in Jakarta.
	svc := newTestService(repo, time.Date(2025, 3, 4, 23, 30, 0, 0, time.UTC))
	ctx := t.Context()
	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	repo.On("GetOrCreate", ctx, "emp-1", day).Return(attendance.Attendance{ID: "att-1", Status: attendance.StatusAbsent}, nil)
	repo.On("RecordCheckIn", ctx, "emp-1", day, attendance.NewTimeOfDay(6, 30, 0)).Return(attendance.Attendance{
		ID:      "att-1",
		Date:    day,
		CheckIn: tod(6, 30),
		Status:  attendance.StatusPresent,
	}, true, nil)

	// Act
	resp, err := svc.CheckIn(ctx, "emp-1")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, "Present", resp.Attendance.Status)
	assert.Equal(t, "06:30:00", *resp.Attendance.CheckIn)
	repo.AssertExpectations(t)
}

func TestAttendanceService_InvalidatesAdminDashboard(t *testing.T) {
	repo := &mocks.AttendanceRepository{}
	dashboardCache := &mocks.DashboardCache{}
	svc := newTestService(repo, time.Date(2025, 3, 5, 2, 0, 0, 0, time.UTC))
	svc.dashboardCache = dashboardCache
	ctx := t.Context()
	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	status := "Late"

	repo.On("GetOrCreate", ctx, "emp-1", day).Return(attendance.Attendance{ID: "att-1"}, nil)
	repo.On("RecordCheckIn", ctx, "emp-1", day, attendance.NewTimeOfDay(9, 0, 0)).
		Return(attendance.Attendance{ID: "att-1", CheckIn: tod(9, 0), Status: attendance.StatusPresent}, true, nil)
	repo.On("GetByID", ctx, "att-1").Return(attendance.Attendance{ID: "att-1", CheckIn: tod(9, 0), Status: attendance.StatusPresent}, nil)
	repo.On("Update", ctx, mock.Anything).Return(attendance.Attendance{ID: "att-1", CheckIn: tod(9, 0), Status: attendance.StatusLate}, nil)
	dashboardCache.On("InvalidateAdmin", ctx).Twice()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	_, err = svc.Correct(ctx, "att-1", attendance.UpdateAttendanceRequest{Status: &status})
	require.NoError(t, err)

	dashboardCache.AssertExpectations(t)
}

func TestAttendanceService_CheckIn_Repeated(t *testing.T) {
	repo := &mocks.AttendanceRepository{}
	svc := newTestService(repo, time.Date(2025, 3, 5, 5, 0, 0, 0, time.UTC))
	ctx := t.Context()

	repo.On("GetOrCreate", ctx, "emp-1", mock.Anything).Return(attendance.Attendance{ID: "att-1", CheckIn: tod(8, 0)}, nil)
	repo.On("RecordCheckIn", ctx, "emp-1", mock.Anything, mock.Anything).Return(attendance.Attendance{
		ID:      "att-1",
		CheckIn: tod(8, 0),
		Status:  attendance.StatusPresent,
	}, false, nil)

	resp, err := svc.CheckIn(ctx, "emp-1")

	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Equal(t, "08:00:00", *resp.Attendance.CheckIn)
}

func TestAttendanceService_CheckOut_RequiresCheckIn(t *testing.T) {
	repo := &mocks.AttendanceRepository{}
	svc := newTestService(repo, time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC))
	ctx := t.Context()

	repo.On("GetOrCreate", ctx, "emp-1", mock.Anything).Return(attendance.Attendance{ID: "att-1", Status: attendance.StatusAbsent}, nil)

	_, err := svc.CheckOut(ctx, "emp-1")

	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	repo.AssertNotCalled(t, "RecordCheckOut")
}

func TestAttendanceService_CheckOut_Success(t *testing.T) {
	repo := &mocks.AttendanceRepository{}
	svc := newTestService(repo, time.Date(2025, 3, 5, 10, 15, 0, 0, time.UTC))
	ctx := t.Context()

	repo.On("GetOrCreate", ctx, "emp-1", mock.Anything).Return(attendance.Attendance{ID: "att-1", CheckIn: tod(8, 0)}, nil)
	repo.On("RecordCheckOut", ctx, "emp-1", mock.Anything, attendance.NewTimeOfDay(17, 15, 0)).Return(attendance.Attendance{
		ID:       "att-1",
		CheckIn:  tod(8, 0),
		CheckOut: tod(17, 15),
		Status:   attendance.StatusPresent,
	}, true, nil)

	resp, err := svc.CheckOut(ctx, "emp-1")

	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, "9h 15m", *resp.Attendance.WorkedHours)
}

func TestAttendanceService_Summary_FetchesMonthAndWeek(t *testing.T) {
	repo := &mocks.AttendanceRepository{}
	svc := newTestService(repo, time.Now())
	ctx := t.Context()
	ref := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	// The week window [Feb 25, Mar 3] reaches back into February.
	from := time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	repo.On("ListByEmployeeBetween", ctx, "emp-1", from, to).Return([]attendance.Attendance{
		{ID: "a", Date: time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, CheckIn: tod(9, 0), CheckOut: tod(17, 0)},
		{ID: "b", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, CheckIn: tod(9, 0), CheckOut: tod(13, 30)},
		{ID: "c", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Status: attendance.StatusLate},
		{ID: "d", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
	}, nil)

	summary, err := svc.Summary(ctx, "emp-1", ref)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.MonthRecords)
	assert.Equal(t, 1, summary.TotalPresent)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.TotalAbsent)
	assert.Equal(t, 33.3, summary.AttendancePercent)
	assert.Equal(t, "12h 30m", summary.WeekHours)
	assert.Equal(t, 4, summary.WeekTotalDays)
	assert.Equal(t, 2, summary.WeekDaysPresent)
}

func TestAttendanceService_Correct(t *testing.T) {
	t.Run("overrides once-only fields", func(t *testing.T) {
		repo := &mocks.AttendanceRepository{}
		svc := newTestService(repo, time.Now())
		ctx := t.Context()
		in, out, status := "07:45", "16:00:30", "Late"

		repo.On("GetByID", ctx, "att-1").Return(attendance.Attendance{ID: "att-1", CheckIn: tod(8, 0), CheckOut: tod(17, 0), Status: attendance.StatusPresent}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(a attendance.Attendance) bool {
			return a.Status == attendance.StatusLate &&
				*a.CheckIn == attendance.NewTimeOfDay(7, 45, 0) &&
				*a.CheckOut == attendance.NewTimeOfDay(16, 0, 30)
		})).Return(attendance.Attendance{ID: "att-1", CheckIn: tod(7, 45), CheckOut: tod(16, 0), Status: attendance.StatusLate}, nil)

		resp, err := svc.Correct(ctx, "att-1", attendance.UpdateAttendanceRequest{Status: &status, CheckIn: &in, CheckOut: &out})

		require.NoError(t, err)
		assert.Equal(t, "Late", resp.Status)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		repo := &mocks.AttendanceRepository{}
		svc := newTestService(repo, time.Now())
		ctx := t.Context()
		out := "07:00"

		repo.On("GetByID", ctx, "att-1").Return(attendance.Attendance{ID: "att-1", CheckIn: tod(8, 0)}, nil)

		_, err := svc.Correct(ctx, "att-1", attendance.UpdateAttendanceRequest{CheckOut: &out})

		assert.ErrorIs(t, err, attendance.ErrInvalidTimeRange)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mocks.AttendanceRepository{}
		svc := newTestService(repo, time.Now())
		ctx := t.Context()

		repo.On("GetByID", ctx, "missing").Return(attendance.Attendance{}, attendance.ErrAttendanceNotFound)

		_, err := svc.Correct(ctx, "missing", attendance.UpdateAttendanceRequest{})

		assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	})
}

func TestAttendanceService_MyAttendance_DefaultsToCurrentMonth(t *testing.T) {
	repo := &mocks.AttendanceRepository{}
	svc := newTestService(repo, time.Date(2025, 3, 20, 3, 0, 0, 0, time.UTC))
	ctx := t.Context()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	repo.On("ListByEmployeeBetween", ctx, "emp-1", from, today).Return([]attendance.Attendance{
		{ID: "a", Date: from, Status: attendance.StatusPresent},
	}, nil)
	repo.On("ListByEmployeeBetween", ctx, "emp-1", from, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)).Return([]attendance.Attendance{
		{ID: "a", Date: from, Status: attendance.StatusPresent},
	}, nil)

	resp, err := svc.MyAttendance(ctx, "emp-1", attendance.MyAttendanceFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, 100.0, resp.Summary.AttendancePercent)
}
