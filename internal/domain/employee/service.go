package employee

import (
	"context"
	"io"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	SetActive(ctx context.Context, req SetActiveRequest) (SetActiveResponse, error)
	SendMessage(ctx context.Context, id string, senderName string, req MessageEmployeeRequest) error
}

// ProfileService is the employee-facing view of their own record.
type ProfileService interface {
	GetProfile(ctx context.Context, employeeID string) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, employeeID string, req SelfUpdateRequest) (EmployeeResponse, error)
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (EmployeeResponse, error)
}
