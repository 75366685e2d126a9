package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/managely-hr/hr-backend-go/internal/domain/document"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/service/file"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
	employee.EmployeeRepository
	fileService file.FileService
}

func NewDocumentService(documentRepo document.DocumentRepository, employeeRepo employee.EmployeeRepository, fileService file.FileService) document.DocumentService {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepo,
		EmployeeRepository: employeeRepo,
		fileService:        fileService,
	}
}

// Upload implements document.DocumentService.
func (s *DocumentServiceImpl) Upload(ctx context.Context, req document.UploadDocumentRequest, f io.Reader) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return document.DocumentResponse{}, err
	}

	path, err := s.fileService.UploadDocument(ctx, req.EmployeeID, f, req.Filename)
	if err != nil {
		if errors.Is(err, file.ErrUnsupportedFileType) {
			return document.DocumentResponse{}, errors.Join(document.ErrUnsupportedFileType, err)
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to store document: %w", err)
	}

	created, err := s.DocumentRepository.Create(ctx, document.Document{
		EmployeeID: req.EmployeeID,
		Category:   document.Category(req.Category),
		Title:      req.Title,
		FilePath:   path,
		ViewOnly:   req.ViewOnly,
	})
	if err != nil {
		if delErr := s.fileService.DeleteFile(ctx, path); delErr != nil {
			slog.Warn("failed to remove orphaned document file", "path", path, "error", delErr)
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to save document: %w", err)
	}
	return document.ToResponse(created, s.fileService.URL(created.FilePath)), nil
}

// Delete implements document.DocumentService.
func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DocumentRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.fileService.DeleteFile(ctx, doc.FilePath); err != nil {
		slog.Warn("failed to delete document file", "document_id", id, "path", doc.FilePath, "error", err)
	}
	return nil
}

// ListForEmployee implements document.DocumentService.
func (s *DocumentServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]document.CategoryGroup, error) {
	docs, err := s.DocumentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		url := ""
		if !d.ViewOnly {
			url = s.fileService.URL(d.FilePath)
		}
		responses = append(responses, document.ToResponse(d, url))
	}
	return document.GroupByCategory(responses), nil
}

// Download implements document.DocumentService. Someone else's document is
// reported as not found.
func (s *DocumentServiceImpl) Download(ctx context.Context, employeeID, documentID string) (document.Download, error) {
	doc, err := s.DocumentRepository.GetByID(ctx, documentID)
	if err != nil {
		return document.Download{}, err
	}
	if doc.EmployeeID != employeeID {
		return document.Download{}, document.ErrDocumentNotFound
	}
	if doc.ViewOnly {
		return document.Download{}, document.ErrDocumentViewOnly
	}

	rc, err := s.fileService.Open(ctx, doc.FilePath)
	if err != nil {
		return document.Download{}, fmt.Errorf("failed to open document: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return document.Download{}, fmt.Errorf("failed to read document: %w", err)
	}

	return document.Download{
		Filename:    downloadName(doc),
		ContentType: file.ContentType(doc.FilePath),
		Content:     content,
	}, nil
}

// downloadName turns the title into a file name carrying the stored extension.
func downloadName(doc document.Document) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return '-'
		}
		return r
	}, doc.Title)
	return name + filepath.Ext(doc.FilePath)
}
