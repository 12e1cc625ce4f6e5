package user

import "errors"

var (
	ErrMissingEmail    = errors.New("missing_email")
	ErrMissingPassword = errors.New("missing_password")
	ErrNotFound        = errors.New("user_not_found")
)
