package mocks

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

type ProjectRepository struct{ mock.Mock }

func (m *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(project.Project), args.Error(1)
}

func (m *ProjectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(project.Project), args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(project.Project), args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectRepository) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, filter project.ProjectFilter) ([]project.ProjectWithEmployee, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]project.ProjectWithEmployee), args.Get(1).(int64), args.Error(2)
}

func (m *ProjectRepository) TopByProgress(ctx context.Context, n int) ([]project.ProjectWithEmployee, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]project.ProjectWithEmployee), args.Error(1)
}

func (m *ProjectRepository) ProgressStats(ctx context.Context) (int64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}
