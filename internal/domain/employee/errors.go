package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeCodeExists      = errors.New("employee code already exists")
	ErrEmployeeInactive        = errors.New("employee is inactive")
	ErrEmployeeHasNoEmail      = errors.New("employee has no email address")
	ErrInvalidAvatar           = errors.New("avatar must be a JPEG or PNG image")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
)
