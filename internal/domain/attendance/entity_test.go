package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(t *testing.T, s string) *TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return &v
}

func TestParseTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05:00", v.String())

	v, err = ParseTimeOfDay("17:30:15")
	require.NoError(t, err)
	assert.Equal(t, 17*time.Hour+30*time.Minute+15*time.Second, v.Duration())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestAttendance_Worked(t *testing.T) {
	a := Attendance{CheckIn: tod(t, "09:00"), CheckOut: tod(t, "17:30")}
	d, ok := a.Worked()
	assert.True(t, ok)
	assert.Equal(t, 8*time.Hour+30*time.Minute, d)

	_, ok = Attendance{CheckIn: tod(t, "09:00")}.Worked()
	assert.False(t, ok)
}

func TestUpdateAttendanceRequest_Apply(t *testing.T) {
	record := Attendance{Status: StatusAbsent}
	present := string(StatusPresent)
	in, out := "09:00", "17:00"

	got, err := UpdateAttendanceRequest{Status: &present, CheckIn: &in, CheckOut: &out}.Apply(record)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, got.Status)
	assert.Equal(t, "09:00:00", got.CheckIn.String())
	assert.Equal(t, "17:00:00", got.CheckOut.String())

	// Clearing check_out keeps check_in.
	empty := ""
	got, err = UpdateAttendanceRequest{CheckOut: &empty}.Apply(got)
	require.NoError(t, err)
	assert.Nil(t, got.CheckOut)
	assert.NotNil(t, got.CheckIn)

	early := "08:00"
	_, err = UpdateAttendanceRequest{CheckOut: &early}.Apply(got)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdateAttendanceRequest_Validate(t *testing.T) {
	bad := "Holiday"
	badTime := "9am"
	err := (&UpdateAttendanceRequest{Status: &bad, CheckIn: &badTime}).Validate()
	assert.Error(t, err)

	ok := "Late"
	assert.NoError(t, (&UpdateAttendanceRequest{Status: &ok}).Validate())
}

func TestMyAttendanceFilter_Validate(t *testing.T) {
	assert.NoError(t, (&MyAttendanceFilter{}).Validate())
	assert.NoError(t, (&MyAttendanceFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}).Validate())
	assert.Error(t, (&MyAttendanceFilter{StartDate: "2025-04-01", EndDate: "2025-03-31"}).Validate())
	assert.Error(t, (&MyAttendanceFilter{StartDate: "03/01/2025"}).Validate())
}
