package employee

import (
	"fmt"
	"time"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	Phone            string
	Email            *string
	Department       *string
	Designation      *string
	Role             *string
	Address          *string
	EmergencyContact *string
	JoiningDate      *time.Time
	AvatarPath       *string
	PasswordHash     string
	FirstLogin       bool
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TemporaryPasswordLength is how many trailing phone characters form the
// password handed out when an employee is created.
const TemporaryPasswordLength = 6

// FormatEmployeeCode renders the code for the seq-th employee created in year,
// e.g. EM2025001. Sequences beyond 999 simply grow wider.
func FormatEmployeeCode(year, seq int) string {
	return fmt.Sprintf("EM%d%03d", year, seq)
}

// TemporaryPassword derives the onboarding password from the phone number.
func TemporaryPassword(phone string) string {
	r := []rune(phone)
	if len(r) <= TemporaryPasswordLength {
		return phone
	}
	return string(r[len(r)-TemporaryPasswordLength:])
}
