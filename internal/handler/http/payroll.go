package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/payroll"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AttachPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)

	MyPayroll(w http.ResponseWriter, r *http.Request)
	MyPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// List handles GET /admin/payroll?employee_id=&page=&limit=
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result, response.NewMeta(result.Page, result.Limit, result.Total))
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.PayrollRequest
	if !decodeJSON(w, r, &req, "Create payroll") {
		return
	}

	result, err := h.payrollService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll record created successfully", result)
}

func (h *payrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req payroll.PayrollRequest
	if !decodeJSON(w, r, &req, "Update payroll") {
		return
	}

	result, err := h.payrollService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record updated successfully", result)
}

func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}

// AttachPayslip expects a multipart form with a "payslip" part.
func (h *payrollHandlerImpl) AttachPayslip(w http.ResponseWriter, r *http.Request) {
	file, header, ok := formFile(w, r, "payslip")
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.payrollService.AttachPayslip(r.Context(), chi.URLParam(r, "id"), file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip uploaded successfully", result)
}

// DownloadPayslip serves any employee's slip to the back office.
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	h.payslip(w, r, "")
}

// MyPayroll handles GET /payroll/my
func (h *payrollHandlerImpl) MyPayroll(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.MyPayroll(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MyPayslip handles GET /payroll/{id}/slip for the owning employee.
func (h *payrollHandlerImpl) MyPayslip(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	h.payslip(w, r, p.EmployeeID)
}

func (h *payrollHandlerImpl) payslip(w http.ResponseWriter, r *http.Request, employeeID string) {
	slip, err := h.payrollService.Payslip(r.Context(), chi.URLParam(r, "id"), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, slip.Filename, slip.ContentType, slip.Content)
}
