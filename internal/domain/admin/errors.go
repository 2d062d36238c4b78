package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid admin password")
	ErrLoginDisabled      = errors.New("admin login is not configured")
)
