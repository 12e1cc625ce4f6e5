package place

import "errors"

var (
	ErrMissingName = errors.New("missing_name")
	ErrNotFound    = errors.New("place_not_found")
)
