package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already registered")
	ErrStaffAccessRequired     = errors.New("back-office access required")
	ErrEmployeeAccessRequired  = errors.New("employee access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrInvalidCurrentPassword  = errors.New("current password is incorrect")
)
