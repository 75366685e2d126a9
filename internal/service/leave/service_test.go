package leave

import (
	"testing"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeaveService_Submit_CreatesPending(t *testing.T) {
	repo := &mocks.LeaveRequestRepository{}
	svc := NewLeaveService(repo, nil)
	ctx := t.Context()

	repo.On("Create", ctx, mock.MatchedBy(func(r leave.LeaveRequest) bool {
		return r.EmployeeID == "emp-1" &&
			r.Status == leave.StatusPending &&
			r.LeaveType == leave.LeaveTypeAnnual &&
			r.StartDate.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	})).Return(leave.LeaveRequest{
		ID:           "lr-1",
		EmployeeID:   "emp-1",
		LeaveType:    leave.LeaveTypeAnnual,
		NumberOfDays: 3,
		StartDate:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
		Reason:       "Family trip",
		Status:       leave.StatusPending,
	}, nil)

	// Act
	resp, err := svc.Submit(ctx, "emp-1", leave.SubmitLeaveRequest{
		LeaveType:    "Annual",
		NumberOfDays: 3,
		StartDate:    "2025-04-01",
		EndDate:      "2025-04-03",
		Reason:       "Family trip",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "2025-04-03", resp.EndDate)
}

func TestLeaveService_Submit_Invalid(t *testing.T) {
	repo := &mocks.LeaveRequestRepository{}
	svc := NewLeaveService(repo, nil)

	_, err := svc.Submit(t.Context(), "emp-1", leave.SubmitLeaveRequest{
		LeaveType:    "Vacation",
		NumberOfDays: 0,
		StartDate:    "2025-04-03",
		EndDate:      "2025-04-01",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}

func TestLeaveService_MyRequests_IncludesBalances(t *testing.T) {
	repo := &mocks.LeaveRequestRepository{}
	svc := NewLeaveService(repo, nil)
	ctx := t.Context()

	repo.On("ListByEmployee", ctx, "emp-1").Return([]leave.LeaveRequest{
		{ID: "lr-3", LeaveType: leave.LeaveTypeSick, NumberOfDays: 10, Status: leave.StatusApproved},
		{ID: "lr-2", LeaveType: leave.LeaveTypeAnnual, NumberOfDays: 20, Status: leave.StatusPending},
		{ID: "lr-1", LeaveType: leave.LeaveTypeAnnual, NumberOfDays: 8, Status: leave.StatusApproved},
	}, nil)

	resp, err := svc.MyRequests(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, resp.Requests, 3)
	assert.Equal(t, "lr-3", resp.Requests[0].ID)

	byType := map[string]leave.BalanceResponse{}
	for _, b := range resp.Balances {
		byType[b.LeaveType] = b
	}
	assert.Equal(t, 10, byType["Annual"].Remaining)
	assert.Equal(t, -2, byType["Sick"].Remaining)
	assert.Equal(t, 10, byType["Sick"].Used)
	assert.Equal(t, 90, byType["Maternity"].Remaining)
}

func TestLeaveService_Decide(t *testing.T) {
	t.Run("approves pending", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		svc := NewLeaveService(repo, nil)
		ctx := t.Context()

		repo.On("TransitionFromPending", ctx, "lr-1", leave.StatusApproved, "user-1").
			Return(leave.LeaveRequest{ID: "lr-1", Status: leave.StatusApproved}, true, nil)

		resp, err := svc.Decide(ctx, "lr-1", leave.StatusApproved, "user-1")

		require.NoError(t, err)
		assert.True(t, resp.Applied)
		assert.Equal(t, "Approved", resp.Request.Status)
	})

	t.Run("repeat of same decision is a no-op", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		svc := NewLeaveService(repo, nil)
		ctx := t.Context()

		repo.On("TransitionFromPending", ctx, "lr-1", leave.StatusRejected, "user-1").
			Return(leave.LeaveRequest{ID: "lr-1", Status: leave.StatusRejected}, false, nil)

		resp, err := svc.Decide(ctx, "lr-1", leave.StatusRejected, "user-1")

		require.NoError(t, err)
		assert.False(t, resp.Applied)
		assert.Equal(t, "Rejected", resp.Request.Status)
	})

	t.Run("conflicting decision", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		svc := NewLeaveService(repo, nil)
		ctx := t.Context()

		repo.On("TransitionFromPending", ctx, "lr-1", leave.StatusApproved, "user-1").
			Return(leave.LeaveRequest{ID: "lr-1", Status: leave.StatusRejected}, false, nil)

		_, err := svc.Decide(ctx, "lr-1", leave.StatusApproved, "user-1")

		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		svc := NewLeaveService(repo, nil)

		_, err := svc.Decide(t.Context(), "lr-1", leave.StatusPending, "user-1")

		assert.ErrorIs(t, err, leave.ErrInvalidDecision)
		repo.AssertNotCalled(t, "TransitionFromPending")
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		svc := NewLeaveService(repo, nil)
		ctx := t.Context()

		repo.On("TransitionFromPending", ctx, "missing", leave.StatusApproved, "user-1").
			Return(leave.LeaveRequest{}, false, leave.ErrLeaveRequestNotFound)

		_, err := svc.Decide(ctx, "missing", leave.StatusApproved, "user-1")

		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}

func TestLeaveService_InvalidatesAdminDashboard(t *testing.T) {
	t.Run("after submit", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		dashboardCache := &mocks.DashboardCache{}
		svc := NewLeaveService(repo, dashboardCache)
		ctx := t.Context()

		repo.On("Create", ctx, mock.Anything).Return(leave.LeaveRequest{ID: "lr-1", Status: leave.StatusPending}, nil)
		dashboardCache.On("InvalidateAdmin", ctx).Once()

		_, err := svc.Submit(ctx, "emp-1", leave.SubmitLeaveRequest{
			LeaveType:    "Sick",
			NumberOfDays: 1,
			StartDate:    "2025-04-01",
			EndDate:      "2025-04-01",
			Reason:       "Fever",
		})

		require.NoError(t, err)
		dashboardCache.AssertExpectations(t)
	})

	t.Run("after an applied decision", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		dashboardCache := &mocks.DashboardCache{}
		svc := NewLeaveService(repo, dashboardCache)
		ctx := t.Context()

		repo.On("TransitionFromPending", ctx, "lr-1", leave.StatusApproved, "user-1").
			Return(leave.LeaveRequest{ID: "lr-1", Status: leave.StatusApproved}, true, nil)
		dashboardCache.On("InvalidateAdmin", ctx).Once()

		_, err := svc.Decide(ctx, "lr-1", leave.StatusApproved, "user-1")

		require.NoError(t, err)
		dashboardCache.AssertExpectations(t)
	})

	t.Run("not after a repeated decision", func(t *testing.T) {
		repo := &mocks.LeaveRequestRepository{}
		dashboardCache := &mocks.DashboardCache{}
		svc := NewLeaveService(repo, dashboardCache)
		ctx := t.Context()

		repo.On("TransitionFromPending", ctx, "lr-1", leave.StatusApproved, "user-1").
			Return(leave.LeaveRequest{ID: "lr-1", Status: leave.StatusApproved}, false, nil)

		_, err := svc.Decide(ctx, "lr-1", leave.StatusApproved, "user-1")

		require.NoError(t, err)
		dashboardCache.AssertNotCalled(t, "InvalidateAdmin", mock.Anything)
	})
}
