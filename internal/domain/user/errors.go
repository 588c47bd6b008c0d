package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrEmployeeCodeExists     = errors.New("employee code already taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrNotProfileOwner        = errors.New("profile belongs to another user")
	ErrAdminOnlyField         = errors.New("field is editable by admins only")
	ErrDocumentNotFound       = errors.New("document not found")
)
