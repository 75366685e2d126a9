package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/document"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	MyDocuments(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)

	Upload(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

// MyDocuments handles GET /documents/my, grouped by category.
func (h *documentHandlerImpl) MyDocuments(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.documentService.ListForEmployee(r.Context(), p.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Download handles GET /documents/{id}/download
func (h *documentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	file, err := h.documentService.Download(r.Context(), p.EmployeeID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}

// Upload expects multipart fields employee_id, category, title, view_only
// and a "file" part.
func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, ok := formFile(w, r, "file")
	if !ok {
		return
	}
	defer file.Close()

	viewOnly, _ := strconv.ParseBool(r.FormValue("view_only"))
	req := document.UploadDocumentRequest{
		EmployeeID: r.FormValue("employee_id"),
		Category:   r.FormValue("category"),
		Title:      r.FormValue("title"),
		ViewOnly:   viewOnly,
		Filename:   header.Filename,
	}

	result, err := h.documentService.Upload(r.Context(), req, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Document uploaded successfully", result)
}

// ListForEmployee handles GET /admin/employees/{id}/documents
func (h *documentHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.documentService.ListForEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}
