package mocks

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/document"
	"github.com/stretchr/testify/mock"
)

type DocumentRepository struct{ mock.Mock }

func (m *DocumentRepository) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(document.Document), args.Error(1)
}

func (m *DocumentRepository) GetByID(ctx context.Context, id string) (document.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(document.Document), args.Error(1)
}

func (m *DocumentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]document.Document, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *DocumentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
