package project

import (
	"strings"

	"github.com/managely-hr/hr-backend-go/internal/pkg/utils"
	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to" validate:"required"`
	Progress    int    `json:"progress" validate:"gte=0,lte=100"`
	DueDate     string `json:"due_date" validate:"required"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

func (r *CreateProjectRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	}
	if r.Status == "" {
		r.Status = string(StatusPlanning)
	}

	errs := validator.Struct(r)
	if r.DueDate != "" {
		if _, ok := validator.IsValidDate(r.DueDate); !ok {
			errs.Add("due_date", "due_date must be in YYYY-MM-DD format")
		}
	}
	validateEnums(&errs, &r.Priority, &r.Status)
	return errs.OrNil()
}

func (r *CreateProjectRequest) ToEntity(assignedBy string) Project {
	due, _ := validator.IsValidDate(r.DueDate)
	return Project{
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  r.AssignedTo,
		AssignedBy:  assignedBy,
		Progress:    r.Progress,
		DueDate:     due,
		Priority:    Priority(r.Priority),
		Status:      Status(r.Status),
	}
}

// UpdateProjectRequest leaves nil fields unchanged.
type UpdateProjectRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty" validate:"omitempty,min=1"`
	Progress    *int    `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	errs := validator.Struct(r)
	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs.Add("due_date", "due_date must be in YYYY-MM-DD format")
		}
	}
	validateEnums(&errs, r.Priority, r.Status)
	return errs.OrNil()
}

// Apply merges the update into p. assignedBy replaces the assigner when non-empty.
func (r UpdateProjectRequest) Apply(p Project, assignedBy string) Project {
	if r.Title != nil {
		p.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.AssignedTo != nil {
		p.AssignedTo = *r.AssignedTo
	}
	if r.Progress != nil {
		p.Progress = *r.Progress
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if d, ok := validator.IsValidDate(*r.DueDate); ok {
			p.DueDate = d
		}
	}
	if r.Priority != nil {
		p.Priority = Priority(*r.Priority)
	}
	if r.Status != nil {
		p.Status = Status(*r.Status)
	}
	if assignedBy != "" {
		p.AssignedBy = assignedBy
	}
	return p
}

func validateEnums(errs *validator.ValidationErrors, priority, status *string) {
	if priority != nil && !validator.IsInSlice(*priority, Priorities) {
		errs.Add("priority", "priority must be one of: "+strings.Join(Priorities, ", "))
	}
	if status != nil && !validator.IsInSlice(*status, Statuses) {
		errs.Add("status", "status must be one of: "+strings.Join(Statuses, ", "))
	}
}

type ProjectFilter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

func (f *ProjectFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != "" && !validator.IsInSlice(f.Status, Statuses) {
		errs.Add("status", "status must be one of: "+strings.Join(Statuses, ", "))
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return errs.OrNil()
}

func (f ProjectFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ProjectResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	AssignedTo         string `json:"assigned_to"`
	AssignedToName     string `json:"assigned_to_name,omitempty"`
	AssignedBy         string `json:"assigned_by"`
	AssignedByInitials string `json:"assigned_by_initials"`
	Progress           int    `json:"progress"`
	DueDate            string `json:"due_date"`
	Priority           string `json:"priority"`
	Status             string `json:"status"`
}

func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		AssignedTo:         p.AssignedTo,
		AssignedBy:         p.AssignedBy,
		AssignedByInitials: utils.Initials(p.AssignedBy),
		Progress:           p.Progress,
		DueDate:            p.DueDate.Format("2006-01-02"),
		Priority:           string(p.Priority),
		Status:             string(p.Status),
	}
}

type Stats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Completed     int `json:"completed"`
	PendingReview int `json:"pending_review"`
	SuccessRate   int `json:"success_rate"`
}

type MyProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Stats    Stats             `json:"stats"`
}

type ListProjectResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
