package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	// ListByEmployee returns documents newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Document, error)
	Delete(ctx context.Context, id string) error
}
