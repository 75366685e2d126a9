package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit handles POST /leave
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req leave.SubmitLeaveRequest
	if !decodeJSON(w, r, &req, "Submit leave") {
		return
	}

	result, err := h.leaveService.Submit(r.Context(), p.EmployeeID, req)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// MyRequests handles GET /leave/my
func (h *leaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.MyRequests(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Balances handles GET /leave/balances
func (h *leaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.Balances(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToBalanceResponses(result))
}

// List handles GET /admin/leave?status=&page=&limit=
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Status: r.URL.Query().Get("status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result, response.NewMeta(result.Page, result.Limit, result.Total))
}

// Approve handles POST /admin/leave/{id}/approve
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusApproved)
}

// Reject handles POST /admin/leave/{id}/reject
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusRejected)
}

func (h *leaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, status leave.Status) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.Decide(r.Context(), chi.URLParam(r, "id"), status, p.SubjectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Leave request " + string(status)
	if !result.Applied {
		message = "Leave request already " + string(status)
	}
	response.SuccessWithMessage(w, message, result)
}
