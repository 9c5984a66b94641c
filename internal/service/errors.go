package service

import (
	"fmt"

	"github.com/phrazzld/news-api/internal/domain"
)

// NewsServiceError wraps unexpected errors from the news service with context.
type NewsServiceError struct {
	// Operation is the operation that failed (e.g., "list_articles", "add_comment")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for NewsServiceError.
func (e *NewsServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("news service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("news service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *NewsServiceError) Unwrap() error {
	return e.Err
}

// NewNewsServiceError creates a new NewsServiceError.
// Domain failures are returned directly without wrapping.
func NewNewsServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if f, ok := domain.AsFailure(err); ok {
		return f
	}

	return &NewsServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
