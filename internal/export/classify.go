package export

import (
	"context"
	"errors"
	"strings"
)

// Category is a closed set of diagnostic labels for export failures. It is
// reporting-only: control flow depends on isTerminal, never on Category.
type Category string

const (
	CategoryTimeout Category = "timeout"
	CategoryFont    Category = "font"
	CategoryMemory  Category = "memory"
	CategoryFormat  Category = "pdf_format"
	CategoryUnknown Category = "unknown"
)

// Classify maps an export error onto a diagnostic category.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	if errors.Is(err, ErrSerializeTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return CategoryTimeout
	case strings.Contains(msg, "font"):
		return CategoryFont
	case strings.Contains(msg, "stack overflow") ||
		strings.Contains(msg, "maximum call stack") ||
		strings.Contains(msg, "out of memory"):
		return CategoryMemory
	case strings.Contains(msg, "corrupt") ||
		strings.Contains(msg, "pdf") ||
		strings.Contains(msg, "signature") ||
		strings.Contains(msg, "buffer"):
		return CategoryFormat
	default:
		return CategoryUnknown
	}
}

// isTerminal reports whether an attempt error ends the retry loop early:
// timeouts and stack-overflow-class failures do not improve on retry, and
// a canceled context means the caller has gone away.
func isTerminal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSerializeTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "stack overflow") ||
		strings.Contains(msg, "maximum call stack")
}

// Retryable reports whether the caller could reasonably retry the whole
// export. Used only as a hint in error responses.
func Retryable(err error) bool {
	return err != nil && !isTerminal(err)
}
