package project

import (
	"context"
	"fmt"

	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
	employee.EmployeeRepository
	dashboardCache dashboard.CacheInvalidator
}

func NewProjectService(projectRepo project.ProjectRepository, employeeRepo employee.EmployeeRepository, dashboardCache dashboard.CacheInvalidator) project.ProjectService {
	return &ProjectServiceImpl{
		ProjectRepository:  projectRepo,
		EmployeeRepository: employeeRepo,
		dashboardCache:     dashboardCache,
	}
}

func (s *ProjectServiceImpl) invalidateDashboard(ctx context.Context) {
	if s.dashboardCache != nil {
		s.dashboardCache.InvalidateAdmin(ctx)
	}
}

// ComputeStats counts projects per lifecycle bucket. Planning projects only
// count towards the total.
func ComputeStats(projects []project.Project) project.Stats {
	stats := project.Stats{
		Total:       len(projects),
		SuccessRate: SuccessRate(project.Progresses(projects)),
	}
	for _, p := range projects {
		switch p.Status {
		case project.StatusInProgress:
			stats.Active++
		case project.StatusCompleted:
			stats.Completed++
		case project.StatusReview:
			stats.PendingReview++
		}
	}
	return stats
}

// MyProjects implements project.ProjectService.
func (s *ProjectServiceImpl) MyProjects(ctx context.Context, employeeID string) (project.MyProjectsResponse, error) {
	projects, err := s.ProjectRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return project.MyProjectsResponse{}, fmt.Errorf("failed to list projects: %w", err)
	}

	resp := project.MyProjectsResponse{
		Projects: make([]project.ProjectResponse, 0, len(projects)),
		Stats:    ComputeStats(projects),
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, project.ToResponse(p))
	}
	return resp, nil
}

// MyProject implements project.ProjectService.
func (s *ProjectServiceImpl) MyProject(ctx context.Context, employeeID, projectID string) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, projectID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if p.AssignedTo != employeeID {
		return project.ProjectResponse{}, project.ErrProjectNotFound
	}
	return project.ToResponse(p), nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, filter project.ProjectFilter) (project.ListProjectResponse, error) {
	if err := filter.Validate(); err != nil {
		return project.ListProjectResponse{}, err
	}

	rows, total, err := s.ProjectRepository.List(ctx, filter)
	if err != nil {
		return project.ListProjectResponse{}, fmt.Errorf("failed to list projects: %w", err)
	}

	resp := project.ListProjectResponse{
		Projects: make([]project.ProjectResponse, 0, len(rows)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, row := range rows {
		r := project.ToResponse(row.Project)
		r.AssignedToName = row.EmployeeName
		resp.Projects = append(resp.Projects, r)
	}
	return resp, nil
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return s.withAssignee(ctx, p)
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, assignedBy string, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, req.AssignedTo); err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, req.ToEntity(assignedBy))
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}
	s.invalidateDashboard(ctx)
	return s.withAssignee(ctx, created)
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, assignedBy string, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	existing, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if req.AssignedTo != nil && *req.AssignedTo != existing.AssignedTo {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.AssignedTo); err != nil {
			return project.ProjectResponse{}, err
		}
	}

	updated, err := s.ProjectRepository.Update(ctx, req.Apply(existing, assignedBy))
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to update project: %w", err)
	}
	s.invalidateDashboard(ctx)
	return s.withAssignee(ctx, updated)
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.ProjectRepository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

func (s *ProjectServiceImpl) withAssignee(ctx context.Context, p project.Project) (project.ProjectResponse, error) {
	resp := project.ToResponse(p)
	names, err := s.EmployeeRepository.ListNames(ctx, []string{p.AssignedTo})
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to load assignee: %w", err)
	}
	resp.AssignedToName = names[p.AssignedTo]
	return resp, nil
}
