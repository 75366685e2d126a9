package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	ActivateEmployee(w http.ResponseWriter, r *http.Request)
	DeactivateEmployee(w http.ResponseWriter, r *http.Request)
	MessageEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees handles GET /admin/employees?q=&department=&page=&limit=
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Query:      r.URL.Query().Get("q"),
		Department: r.URL.Query().Get("department"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, response.NewMeta(result.Page, result.Limit, result.Total))
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee returns the generated code and the temporary password.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req, "CreateEmployee") {
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req, "UpdateEmployee") {
		return
	}

	result, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// SetActive handles bulk activation and deactivation.
func (h *employeeHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	var req employee.SetActiveRequest
	if !decodeJSON(w, r, &req, "SetActive") {
		return
	}
	h.setActive(w, r, req)
}

func (h *employeeHandlerImpl) ActivateEmployee(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, employee.SetActiveRequest{EmployeeIDs: []string{chi.URLParam(r, "id")}, Active: true})
}

func (h *employeeHandlerImpl) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, employee.SetActiveRequest{EmployeeIDs: []string{chi.URLParam(r, "id")}, Active: false})
}

func (h *employeeHandlerImpl) setActive(w http.ResponseWriter, r *http.Request, req employee.SetActiveRequest) {
	result, err := h.employeeService.SetActive(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee status updated successfully", result)
}

// MessageEmployee emails an employee on behalf of the acting back-office user.
func (h *employeeHandlerImpl) MessageEmployee(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req employee.MessageEmployeeRequest
	if !decodeJSON(w, r, &req, "MessageEmployee") {
		return
	}

	if err := h.employeeService.SendMessage(r.Context(), chi.URLParam(r, "id"), p.Name, req); err != nil {
		slog.Error("MessageEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Message sent successfully", nil)
}
