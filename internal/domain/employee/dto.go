package employee

import (
	"strings"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName         string  `json:"full_name" validate:"required,max=150"`
	Phone            string  `json:"phone" validate:"required,min=6,max=20"`
	Email            *string `json:"email,omitempty"`
	Department       *string `json:"department,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Role             *string `json:"role,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	JoiningDate      *string `json:"joining_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)

	errs := validator.Struct(r)
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone must contain only digits, spaces, dashes and an optional leading +")
	}
	validateOptionalFields(&errs, r.Email, r.JoiningDate)
	return errs.OrNil()
}

// UpdateEmployeeRequest is used both by the back office and by the employee
// editing their own profile. Nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	FullName         *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=150"`
	Phone            *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	Email            *string `json:"email,omitempty"`
	Department       *string `json:"department,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Role             *string `json:"role,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	JoiningDate      *string `json:"joining_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone must contain only digits, spaces, dashes and an optional leading +")
	}
	validateOptionalFields(&errs, r.Email, r.JoiningDate)
	return errs.OrNil()
}

// ParsedJoiningDate returns the joining date when one was supplied.
func (r *UpdateEmployeeRequest) ParsedJoiningDate() *time.Time {
	return parseDatePtr(r.JoiningDate)
}

// SelfUpdateRequest is what an employee may change on their own profile.
// Phone and employee code stay under back-office control.
type SelfUpdateRequest struct {
	FullName         *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=150"`
	Email            *string `json:"email,omitempty"`
	Department       *string `json:"department,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Role             *string `json:"role,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	JoiningDate      *string `json:"joining_date,omitempty"`
}

func (r *SelfUpdateRequest) Validate() error {
	errs := validator.Struct(r)
	validateOptionalFields(&errs, r.Email, r.JoiningDate)
	return errs.OrNil()
}

func (r SelfUpdateRequest) ToUpdate() UpdateEmployeeRequest {
	return UpdateEmployeeRequest{
		FullName:         r.FullName,
		Email:            r.Email,
		Department:       r.Department,
		Designation:      r.Designation,
		Role:             r.Role,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		JoiningDate:      r.JoiningDate,
	}
}

type SetActiveRequest struct {
	EmployeeIDs []string `json:"employee_ids" validate:"required,min=1,dive,required"`
	Active      bool     `json:"active"`
}

func (r *SetActiveRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type MessageEmployeeRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

func (r *MessageEmployeeRequest) Validate() error {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	return validator.Struct(r).OrNil()
}

type EmployeeFilter struct {
	Query      string
	Department string
	Page       int
	Limit      int
}

// Normalize clamps paging to sane bounds.
func (f *EmployeeFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	f.Query = strings.TrimSpace(f.Query)
	f.Department = strings.TrimSpace(f.Department)
}

func (f EmployeeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	Phone            string  `json:"phone"`
	Email            *string `json:"email"`
	Department       *string `json:"department"`
	Designation      *string `json:"designation"`
	Role             *string `json:"role"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	JoiningDate      *string `json:"joining_date"`
	AvatarURL        *string `json:"avatar_url"`
	IsActive         bool    `json:"is_active"`
	FirstLogin       bool    `json:"first_login"`
	CreatedAt        string  `json:"created_at"`
}

// CreateEmployeeResponse exposes the temporary password exactly once.
type CreateEmployeeResponse struct {
	Employee          EmployeeResponse `json:"employee"`
	TemporaryPassword string           `json:"temporary_password"`
}

type ListEmployeeResponse struct {
	Employees   []EmployeeResponse `json:"employees"`
	Departments []string           `json:"departments"`
	Total       int64              `json:"total"`
	Page        int                `json:"page"`
	Limit       int                `json:"limit"`
}

type SetActiveResponse struct {
	Updated int64 `json:"updated"`
}

// ToResponse maps an employee; avatarURL resolves a stored path to a public URL.
func ToResponse(e Employee, avatarURL func(string) string) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		Phone:            e.Phone,
		Email:            e.Email,
		Department:       e.Department,
		Designation:      e.Designation,
		Role:             e.Role,
		Address:          e.Address,
		EmergencyContact: e.EmergencyContact,
		IsActive:         e.IsActive,
		FirstLogin:       e.FirstLogin,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
	if e.JoiningDate != nil {
		d := e.JoiningDate.Format("2006-01-02")
		resp.JoiningDate = &d
	}
	if e.AvatarPath != nil && avatarURL != nil {
		u := avatarURL(*e.AvatarPath)
		resp.AvatarURL = &u
	}
	return resp
}

func validateOptionalFields(errs *validator.ValidationErrors, email, joiningDate *string) {
	if email != nil && *email != "" && !validator.IsValidEmail(*email) {
		errs.Add("email", "email must be a valid email address")
	}
	if joiningDate != nil && *joiningDate != "" {
		if _, ok := validator.IsValidDate(*joiningDate); !ok {
			errs.Add("joining_date", "joining_date must be in YYYY-MM-DD format")
		}
	}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, ok := validator.IsValidDate(*s)
	if !ok {
		return nil
	}
	return &t
}
