package http

import (
	"net/http"

	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

// SettingsHandler serves the back-office account page.
type SettingsHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService user.SettingsService
}

func NewSettingsHandler(settingsService user.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

func (h *settingsHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.settingsService.GetProfile(r.Context(), p.SubjectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *settingsHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req user.UpdateProfileRequest
	if !decodeJSON(w, r, &req, "UpdateProfile") {
		return
	}

	result, err := h.settingsService.UpdateProfile(r.Context(), p.SubjectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", result)
}

func (h *settingsHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req user.ChangePasswordRequest
	if !decodeJSON(w, r, &req, "ChangePassword") {
		return
	}

	if err := h.settingsService.ChangePassword(r.Context(), p.SubjectID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Password changed successfully", nil)
}
