package http

import (
	"net/http"

	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// EmployeeDashboard returns the caller's self-service widgets
	EmployeeDashboard(w http.ResponseWriter, r *http.Request)
	// AdminDashboard returns the organisation overview
	AdminDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// EmployeeDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.EmployeeDashboard(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// AdminDashboard handles GET /admin/dashboard
func (h *dashboardHandlerImpl) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.AdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
