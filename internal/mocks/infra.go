package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// FileService mocks file.FileService.
type FileService struct{ mock.Mock }

func (m *FileService) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	args := m.Called(ctx, employeeID, file, filename)
	return args.String(0), args.Error(1)
}

func (m *FileService) UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	args := m.Called(ctx, employeeID, file, filename)
	return args.String(0), args.Error(1)
}

func (m *FileService) UploadPayslip(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	args := m.Called(ctx, employeeID, file, filename)
	return args.String(0), args.Error(1)
}

func (m *FileService) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *FileService) DeleteFile(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// URL is deterministic so tests need not stub it.
func (m *FileService) URL(path string) string {
	return "http://files.test/" + path
}

// EmailService mocks email.EmailService.
type EmailService struct{ mock.Mock }

func (m *EmailService) SendWelcome(to, employeeName, employeeCode, temporaryPassword string) error {
	return m.Called(to, employeeName, employeeCode, temporaryPassword).Error(0)
}

func (m *EmailService) SendMessage(to, employeeName, senderName, subject, message string) error {
	return m.Called(to, employeeName, senderName, subject, message).Error(0)
}
