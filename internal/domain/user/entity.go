package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Back office - full access
	RoleHR       Role = "hr"       // Back office - people operations
	RoleEmployee Role = "employee" // Self-service only
)

// IsStaff reports whether the role belongs to the back office.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleHR
}

// User is a back-office account. Employees authenticate through their
// employee record instead.
type User struct {
	ID           string
	Username     string
	Email        *string
	FullName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is what gets recorded as the actor on projects and feedback.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
