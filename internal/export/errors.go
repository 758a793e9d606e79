package export

import "errors"

var (
	// ErrNotFound indicates the referenced resume or export record does
	// not exist for this user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a caller-supplied value failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
