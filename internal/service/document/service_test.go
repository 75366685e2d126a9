package document

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/managely-hr/hr-backend-go/internal/domain/document"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/mocks"
	"github.com/managely-hr/hr-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type documentFixture struct {
	docs      *mocks.DocumentRepository
	employees *mocks.EmployeeRepository
	files     *mocks.FileService
	svc       document.DocumentService
}

func newDocumentFixture() documentFixture {
	f := documentFixture{
		docs:      &mocks.DocumentRepository{},
		employees: &mocks.EmployeeRepository{},
		files:     &mocks.FileService{},
	}
	f.svc = NewDocumentService(f.docs, f.employees, f.files)
	return f
}

func TestDocumentService_Upload_Success(t *testing.T) {
	f := newDocumentFixture()
	ctx := t.Context()
	body := strings.NewReader("%PDF-1.4")

	f.employees.On("GetByID", ctx, "emp-1").Return(employee.Employee{ID: "emp-1"}, nil)
	f.files.On("UploadDocument", ctx, "emp-1", body, "contract.pdf").Return("documents/emp-1/abc.pdf", nil)
	f.docs.On("Create", ctx, document.Document{
		EmployeeID: "emp-1",
		Category:   document.CategoryPersonal,
		Title:      "Contract",
		FilePath:   "documents/emp-1/abc.pdf",
	}).Return(document.Document{ID: "doc-1", EmployeeID: "emp-1", Category: document.CategoryPersonal, Title: "Contract", FilePath: "documents/emp-1/abc.pdf"}, nil)

	// Act
	resp, err := f.svc.Upload(ctx, document.UploadDocumentRequest{
		EmployeeID: "emp-1",
		Category:   "Personal",
		Title:      " Contract ",
		Filename:   "contract.pdf",
	}, body)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "doc-1", resp.ID)
	assert.Equal(t, "http://files.test/documents/emp-1/abc.pdf", resp.URL)
}

func TestDocumentService_Upload_UnsupportedType(t *testing.T) {
	f := newDocumentFixture()
	ctx := t.Context()

	f.employees.On("GetByID", ctx, "emp-1").Return(employee.Employee{ID: "emp-1"}, nil)
	f.files.On("UploadDocument", ctx, "emp-1", mock.Anything, "tool.exe").Return("", file.ErrUnsupportedFileType)

	_, err := f.svc.Upload(ctx, document.UploadDocumentRequest{
		EmployeeID: "emp-1",
		Category:   "IT",
		Title:      "Tool",
		Filename:   "tool.exe",
	}, strings.NewReader("MZ"))

	assert.ErrorIs(t, err, document.ErrUnsupportedFileType)
	f.docs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentService_Upload_InvalidCategory(t *testing.T) {
	f := newDocumentFixture()

	_, err := f.svc.Upload(t.Context(), document.UploadDocumentRequest{
		EmployeeID: "emp-1",
		Category:   "Secrets",
		Title:      "x",
		Filename:   "x.pdf",
	}, strings.NewReader(""))

	require.Error(t, err)
	f.employees.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestDocumentService_Upload_CleansUpOnSaveFailure(t *testing.T) {
	f := newDocumentFixture()
	ctx := t.Context()

	f.employees.On("GetByID", ctx, "emp-1").Return(employee.Employee{ID: "emp-1"}, nil)
	f.files.On("UploadDocument", ctx, "emp-1", mock.Anything, "a.pdf").Return("documents/emp-1/a.pdf", nil)
	f.docs.On("Create", ctx, mock.Anything).Return(document.Document{}, errors.New("db down"))
	f.files.On("DeleteFile", ctx, "documents/emp-1/a.pdf").Return(nil)

	_, err := f.svc.Upload(ctx, document.UploadDocumentRequest{
		EmployeeID: "emp-1",
		Category:   "Forms",
		Title:      "A",
		Filename:   "a.pdf",
	}, strings.NewReader("x"))

	require.Error(t, err)
	f.files.AssertCalled(t, "DeleteFile", ctx, "documents/emp-1/a.pdf")
}

func TestDocumentService_ListForEmployee_Grouped(t *testing.T) {
	f := newDocumentFixture()
	ctx := t.Context()

	f.docs.On("ListByEmployee", ctx, "emp-1").Return([]document.Document{
		{ID: "d1", Category: document.CategoryPayroll, Title: "Slip", FilePath: "documents/emp-1/d1.pdf"},
		{ID: "d2", Category: document.CategoryCompanyPolicies, Title: "Handbook", FilePath: "documents/emp-1/d2.pdf", ViewOnly: true},
	}, nil)

	groups, err := f.svc.ListForEmployee(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, groups, len(document.Categories))
	assert.Equal(t, "Personal", groups[0].Category)
	assert.Empty(t, groups[0].Documents)
	require.Len(t, groups[1].Documents, 1)
	assert.Equal(t, "http://files.test/documents/emp-1/d1.pdf", groups[1].Documents[0].URL)
	require.Len(t, groups[2].Documents, 1)
	assert.Empty(t, groups[2].Documents[0].URL)
}

func TestDocumentService_Download(t *testing.T) {
	f := newDocumentFixture()
	ctx := t.Context()

	f.docs.On("GetByID", ctx, "d1").Return(document.Document{ID: "d1", EmployeeID: "emp-1", Title: "Q1/Report", FilePath: "documents/emp-1/d1.pdf"}, nil)
	f.files.On("Open", ctx, "documents/emp-1/d1.pdf").Return(io.NopCloser(strings.NewReader("pdf-bytes")), nil)

	dl, err := f.svc.Download(ctx, "emp-1", "d1")

	require.NoError(t, err)
	assert.Equal(t, "Q1-Report.pdf", dl.Filename)
	assert.Equal(t, "application/pdf", dl.ContentType)
	assert.Equal(t, []byte("pdf-bytes"), dl.Content)
}

func TestDocumentService_Download_Guards(t *testing.T) {
	f := newDocumentFixture()
	ctx := t.Context()

	f.docs.On("GetByID", ctx, "d1").Return(document.Document{ID: "d1", EmployeeID: "emp-2", FilePath: "x.pdf"}, nil)
	f.docs.On("GetByID", ctx, "d2").Return(document.Document{ID: "d2", EmployeeID: "emp-1", FilePath: "y.pdf", ViewOnly: true}, nil)

	_, err := f.svc.Download(ctx, "emp-1", "d1")
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)

	_, err = f.svc.Download(ctx, "emp-1", "d2")
	assert.ErrorIs(t, err, document.ErrDocumentViewOnly)

	f.files.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}
