package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserInactive            = errors.New("user account is deactivated")
	ErrHRAccessRequired        = errors.New("hr or admin access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
