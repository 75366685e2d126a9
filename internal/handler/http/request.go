package http

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

// maxUploadSize bounds multipart bodies for avatars, documents and payslips.
const maxUploadSize = 10 << 20

// decodeJSON writes a 400 and returns false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// principal returns the caller stored by middleware.AuthRequired.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthenticated)
	}
	return p, ok
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

// formFile parses a multipart body and returns the named part. The caller
// closes the file.
func formFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return nil, nil, false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field '"+field+"' is required", nil)
			return nil, nil, false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return nil, nil, false
	}
	return file, header, true
}
