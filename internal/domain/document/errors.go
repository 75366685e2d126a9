package document

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrDocumentViewOnly    = errors.New("document is view only")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
