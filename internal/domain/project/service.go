package project

import "context"

type ProjectService interface {
	MyProjects(ctx context.Context, employeeID string) (MyProjectsResponse, error)
	// MyProject returns ErrProjectNotFound when the project belongs to someone else.
	MyProject(ctx context.Context, employeeID, projectID string) (ProjectResponse, error)

	List(ctx context.Context, filter ProjectFilter) (ListProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Create(ctx context.Context, assignedBy string, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, id string, assignedBy string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}
