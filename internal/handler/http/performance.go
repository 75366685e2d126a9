package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	MyPerformance(w http.ResponseWriter, r *http.Request)

	ListRatings(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	SetSkill(w http.ResponseWriter, r *http.Request)
	DeleteSkill(w http.ResponseWriter, r *http.Request)
	AddFeedback(w http.ResponseWriter, r *http.Request)
	DeleteFeedback(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{performanceService: performanceService}
}

func (h *performanceHandlerImpl) MyPerformance(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.performanceService.MyPerformance(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *performanceHandlerImpl) ListRatings(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.ListRatings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *performanceHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.Detail(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *performanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertPerformanceRequest
	if !decodeJSON(w, r, &req, "Upsert performance") {
		return
	}

	result, err := h.performanceService.Upsert(r.Context(), chi.URLParam(r, "employeeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Performance saved successfully", result)
}

func (h *performanceHandlerImpl) SetSkill(w http.ResponseWriter, r *http.Request) {
	var req performance.SkillScoreRequest
	if !decodeJSON(w, r, &req, "Set skill") {
		return
	}

	result, err := h.performanceService.SetSkill(r.Context(), chi.URLParam(r, "employeeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Skill saved successfully", result)
}

func (h *performanceHandlerImpl) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.performanceService.DeleteSkill(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Skill deleted successfully", nil)
}

// AddFeedback records feedback; the author defaults to the acting user.
func (h *performanceHandlerImpl) AddFeedback(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req performance.FeedbackRequest
	if !decodeJSON(w, r, &req, "Add feedback") {
		return
	}
	if strings.TrimSpace(req.Author) == "" {
		req.Author = p.Name
	}

	result, err := h.performanceService.AddFeedback(r.Context(), chi.URLParam(r, "employeeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Feedback added successfully", result)
}

func (h *performanceHandlerImpl) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	if err := h.performanceService.DeleteFeedback(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Feedback deleted successfully", nil)
}
