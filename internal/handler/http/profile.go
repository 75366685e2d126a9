package http

import (
	"net/http"

	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

// ProfileHandler is the employee's view of their own record.
type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UploadAvatar(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService employee.ProfileService
}

func NewProfileHandler(profileService employee.ProfileService) ProfileHandler {
	return &profileHandlerImpl{profileService: profileService}
}

func (h *profileHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.profileService.GetProfile(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *profileHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req employee.SelfUpdateRequest
	if !decodeJSON(w, r, &req, "UpdateProfile") {
		return
	}

	result, err := h.profileService.UpdateProfile(r.Context(), p.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", result)
}

// UploadAvatar expects a multipart form with an "avatar" part.
func (h *profileHandlerImpl) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	file, header, ok := formFile(w, r, "avatar")
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.profileService.UploadAvatar(r.Context(), p.EmployeeID, file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Avatar uploaded successfully", result)
}
