package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
)

const projectColumns = `
	p.id, p.title, p.description, p.assigned_to, p.assigned_by, p.progress,
	p.due_date, p.priority, p.status, p.created_at, p.updated_at`

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func scanProject(row pgx.Row, extra ...any) (project.Project, error) {
	var p project.Project
	dest := append([]any{
		&p.ID,
		&p.Title,
		&p.Description,
		&p.AssignedTo,
		&p.AssignedBy,
		&p.Progress,
		&p.DueDate,
		&p.Priority,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func collectProjectsWithEmployee(rows pgx.Rows, capacity int) ([]project.ProjectWithEmployee, error) {
	defer rows.Close()

	items := make([]project.ProjectWithEmployee, 0, capacity)
	for rows.Next() {
		var item project.ProjectWithEmployee
		p, err := scanProject(rows, &item.EmployeeName)
		if err != nil {
			return nil, err
		}
		item.Project = p
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects AS p (id, title, description, assigned_to, assigned_by, progress, due_date, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query,
		newID(),
		p.Title,
		p.Description,
		p.AssignedTo,
		p.AssignedBy,
		p.Progress,
		p.DueDate,
		p.Priority,
		p.Status,
	))
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = $1`, id))
	if err != nil && !errors.Is(err, project.ErrProjectNotFound) {
		return project.Project{}, fmt.Errorf("failed to get project with id %s: %w", id, err)
	}
	return p, err
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects AS p
		SET title = $1, description = $2, assigned_to = $3, assigned_by = $4, progress = $5,
		    due_date = $6, priority = $7, status = $8, updated_at = NOW()
		WHERE p.id = $9
		RETURNING ` + projectColumns

	updated, err := scanProject(q.QueryRow(ctx, query,
		p.Title,
		p.Description,
		p.AssignedTo,
		p.AssignedBy,
		p.Progress,
		p.DueDate,
		p.Priority,
		p.Status,
		p.ID,
	))
	if err != nil && !errors.Is(err, project.ErrProjectNotFound) {
		return project.Project{}, fmt.Errorf("failed to update project with id %s: %w", p.ID, err)
	}
	return updated, err
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// ListByEmployee implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.assigned_to = $1 ORDER BY p.due_date, p.title`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.ProjectWithEmployee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	if filter.EmployeeID != "" {
		where.add("p.assigned_to = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		where.add("p.status = ?", filter.Status)
	}

	from := `FROM projects p JOIN employees e ON e.id = p.assigned_to`

	var total int64
	if err := q.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) %s %s", from, where.clause()), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		%s %s
		ORDER BY p.due_date, p.title
		LIMIT %s OFFSET %s`, projectColumns, from, where.clause(), where.next(filter.Limit), where.next(filter.Offset()))

	rows, err := q.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	items, err := collectProjectsWithEmployee(rows, filter.Limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// TopByProgress implements project.ProjectRepository.
func (r *projectRepositoryImpl) TopByProgress(ctx context.Context, n int) ([]project.ProjectWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+projectColumns+`, e.full_name
		FROM projects p JOIN employees e ON e.id = p.assigned_to
		ORDER BY p.progress DESC, p.due_date
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list top projects: %w", err)
	}
	return collectProjectsWithEmployee(rows, n)
}

// ProgressStats implements project.ProjectRepository.
func (r *projectRepositoryImpl) ProgressStats(ctx context.Context) (int64, float64, error) {
	q := GetQuerier(ctx, r.db)

	var (
		count int64
		avg   float64
	)
	err := q.QueryRow(ctx, `SELECT COUNT(*), COALESCE(AVG(progress), 0)::float8 FROM projects`).Scan(&count, &avg)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load project stats: %w", err)
	}
	return count, avg, nil
}
