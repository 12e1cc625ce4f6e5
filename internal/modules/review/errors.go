package review

import "errors"

var (
	ErrMissingUserID = errors.New("missing_user_id")
	ErrMissingText   = errors.New("missing_text")
	ErrPlaceNotFound = errors.New("place_not_found")
	ErrUserNotFound  = errors.New("user_not_found")
	ErrNotFound      = errors.New("review_not_found")
)
