package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, id string) error
	// ListByEmployee returns projects ordered by due date.
	ListByEmployee(ctx context.Context, employeeID string) ([]Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]ProjectWithEmployee, int64, error)
	// TopByProgress returns the n most advanced projects.
	TopByProgress(ctx context.Context, n int) ([]ProjectWithEmployee, error)
	// ProgressStats returns the project count and the average progress org-wide.
	ProgressStats(ctx context.Context) (count int64, avgProgress float64, err error)
}

type ProjectWithEmployee struct {
	Project
	EmployeeName string
}
