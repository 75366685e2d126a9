package mocks

import (
	"context"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/mock"
)

type AttendanceRepository struct{ mock.Mock }

func (m *AttendanceRepository) GetOrCreate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	args := m.Called(ctx, employeeID, date)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) RecordCheckIn(ctx context.Context, employeeID string, date time.Time, at attendance.TimeOfDay) (attendance.Attendance, bool, error) {
	args := m.Called(ctx, employeeID, date, at)
	return args.Get(0).(attendance.Attendance), args.Bool(1), args.Error(2)
}

func (m *AttendanceRepository) RecordCheckOut(ctx context.Context, employeeID string, date time.Time, at attendance.TimeOfDay) (attendance.Attendance, bool, error) {
	args := m.Called(ctx, employeeID, date, at)
	return args.Get(0).(attendance.Attendance), args.Bool(1), args.Error(2)
}

func (m *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	args := m.Called(ctx, employeeID, from, to)
	return args.Get(0).([]attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceWithEmployee, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]attendance.AttendanceWithEmployee), args.Get(1).(int64), args.Error(2)
}

func (m *AttendanceRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AttendanceRepository) CountByMonth(ctx context.Context, from, to time.Time) (map[time.Time]int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(map[time.Time]int64), args.Error(1)
}
