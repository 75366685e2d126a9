package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	MyProjects(w http.ResponseWriter, r *http.Request)
	MyProject(w http.ResponseWriter, r *http.Request)

	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{projectService: projectService}
}

// MyProjects handles GET /projects/my
func (h *projectHandlerImpl) MyProjects(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.projectService.MyProjects(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MyProject handles GET /projects/my/{id}
func (h *projectHandlerImpl) MyProject(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.projectService.MyProject(r.Context(), p.EmployeeID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List handles GET /admin/projects?employee_id=&status=&page=&limit=
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := project.ProjectFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result, response.NewMeta(result.Page, result.Limit, result.Total))
}

func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create records the acting user's display name as assigned_by.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req project.CreateProjectRequest
	if !decodeJSON(w, r, &req, "Create project") {
		return
	}

	result, err := h.projectService.Create(r.Context(), p.Name, req)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created successfully", result)
}

func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req project.UpdateProjectRequest
	if !decodeJSON(w, r, &req, "Update project") {
		return
	}

	result, err := h.projectService.Update(r.Context(), chi.URLParam(r, "id"), p.Name, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project updated successfully", result)
}

func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}
