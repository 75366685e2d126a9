package mocks

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/stretchr/testify/mock"
)

type PerformanceRepository struct{ mock.Mock }

func (m *PerformanceRepository) GetByEmployee(ctx context.Context, employeeID string) (performance.Performance, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(performance.Performance), args.Error(1)
}

func (m *PerformanceRepository) GetByID(ctx context.Context, id string) (performance.Performance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(performance.Performance), args.Error(1)
}

func (m *PerformanceRepository) Upsert(ctx context.Context, record performance.Performance) (performance.Performance, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(performance.Performance), args.Error(1)
}

func (m *PerformanceRepository) ListAll(ctx context.Context) ([]performance.Performance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]performance.Performance), args.Error(1)
}

func (m *PerformanceRepository) GetOrCreateSkill(ctx context.Context, name, color string) (performance.Skill, error) {
	args := m.Called(ctx, name, color)
	return args.Get(0).(performance.Skill), args.Error(1)
}

func (m *PerformanceRepository) UpsertSkillScore(ctx context.Context, performanceID, skillID string, value int) (performance.SkillScore, error) {
	args := m.Called(ctx, performanceID, skillID, value)
	return args.Get(0).(performance.SkillScore), args.Error(1)
}

func (m *PerformanceRepository) DeleteSkillScore(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *PerformanceRepository) AddFeedback(ctx context.Context, fb performance.Feedback) (performance.Feedback, error) {
	args := m.Called(ctx, fb)
	return args.Get(0).(performance.Feedback), args.Error(1)
}

func (m *PerformanceRepository) DeleteFeedback(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
