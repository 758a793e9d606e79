package resumes

import "errors"

var (
	// ErrNotFound indicates the resume does not exist for this user.
	ErrNotFound = errors.New("resume not found")
	// ErrInvalidInput indicates a caller-supplied value failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
