package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Today returns today's record, creating an empty one on first access.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.Today(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Checked in successfully"
	if !result.Applied {
		message = "Already checked in today"
	}
	response.SuccessWithMessage(w, message, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Checked out successfully"
	if !result.Applied {
		message = "Already checked out today"
	}
	response.SuccessWithMessage(w, message, result)
}

// Summary handles GET /attendance/summary?date=YYYY-MM-DD. The date picks the
// month and week; today is used when it is omitted.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var reference time.Time
	if date := r.URL.Query().Get("date"); date != "" {
		parsed, valid := validator.IsValidDate(date)
		if !valid {
			response.ValidationError(w, map[string]string{"date": "date must be in YYYY-MM-DD format"})
			return
		}
		reference = parsed
	}

	result, err := h.attendanceService.Summary(r.Context(), p.EmployeeID, reference)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.ToSummaryResponse(result))
}

// MyAttendance handles GET /attendance/my?start_date=&end_date=
func (h *attendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	filter := attendance.MyAttendanceFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.MyAttendance(r.Context(), p.EmployeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List handles GET /admin/attendance?employee_code=&date=&status=&page=&limit=
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := attendance.AttendanceFilter{
		EmployeeCode: query.Get("employee_code"),
		Date:         query.Get("date"),
		Status:       query.Get("status"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result, response.NewMeta(result.Page, result.Limit, result.Total))
}

// Correct handles PUT /admin/attendance/{id}
func (h *attendanceHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest
	if !decodeJSON(w, r, &req, "Correct attendance") {
		return
	}

	result, err := h.attendanceService.Correct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}
