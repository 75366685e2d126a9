package document

import (
	"context"
	"io"
)

type DocumentService interface {
	Upload(ctx context.Context, req UploadDocumentRequest, file io.Reader) (DocumentResponse, error)
	Delete(ctx context.Context, id string) error
	ListForEmployee(ctx context.Context, employeeID string) ([]CategoryGroup, error)
	// Download enforces ownership and the view-only flag for employees.
	Download(ctx context.Context, employeeID, documentID string) (Download, error)
}
