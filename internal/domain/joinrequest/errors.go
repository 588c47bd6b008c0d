package joinrequest

import "errors"

var (
	ErrJoinRequestNotFound = errors.New("join request not found")
)
