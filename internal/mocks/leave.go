package mocks

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/mock"
)

type LeaveRequestRepository struct{ mock.Mock }

func (m *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequestWithEmployee, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]leave.LeaveRequestWithEmployee), args.Get(1).(int64), args.Error(2)
}

func (m *LeaveRequestRepository) TransitionFromPending(ctx context.Context, id string, status leave.Status, decidedBy string) (leave.LeaveRequest, bool, error) {
	args := m.Called(ctx, id, status, decidedBy)
	return args.Get(0).(leave.LeaveRequest), args.Bool(1), args.Error(2)
}

func (m *LeaveRequestRepository) CountByStatus(ctx context.Context) (map[leave.Status]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[leave.Status]int64), args.Error(1)
}
