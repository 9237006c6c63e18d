// Package cli provides CLI infrastructure for td.
package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/td/internal/storage"
	"github.com/jacksmith/td/internal/tasks"
)

// NotFoundError indicates a task reference did not match any task.
type NotFoundError struct {
	Ref string // the reference as the user typed it
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.Ref)
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output and adds a
// hint for errors the user can act on.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()
	switch {
	case errors.Is(err, storage.ErrNotInitialized):
		// already carries its own hint
	case errors.Is(err, tasks.ErrStorageUnavailable):
		msg += "\nthe task file could not be read; nothing was changed"
	case errors.Is(err, tasks.ErrPersistenceWriteFailed):
		msg += "\nthe change was not saved"
	}
	return msg
}
