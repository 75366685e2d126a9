package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/document"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
)

const documentColumns = `id, employee_id, category, title, file_path, view_only, created_at`

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(&d.ID, &d.EmployeeID, &d.Category, &d.Title, &d.FilePath, &d.ViewOnly, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return document.Document{}, document.ErrDocumentNotFound
	}
	return d, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	created, err := scanDocument(q.QueryRow(ctx, `
		INSERT INTO documents (id, employee_id, category, title, file_path, view_only)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+documentColumns,
		newID(), doc.EmployeeID, doc.Category, doc.Title, doc.FilePath, doc.ViewOnly,
	))
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDocument(q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil && !errors.Is(err, document.ErrDocumentNotFound) {
		return document.Document{}, fmt.Errorf("failed to get document with id %s: %w", id, err)
	}
	return d, err
}

// ListByEmployee implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+documentColumns+` FROM documents WHERE employee_id = $1 ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}
