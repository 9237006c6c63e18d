package tasks

import "errors"

var (
	// ErrEmptyTitle is returned when a title is empty or whitespace-only.
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrInvalidTitle is returned when a title is not valid UTF-8.
	ErrInvalidTitle = errors.New("task title must be valid UTF-8")

	// ErrNotFound is returned when a referenced task does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrStorageUnavailable is returned when the task file cannot be read.
	ErrStorageUnavailable = errors.New("task storage unavailable")

	// ErrPersistenceWriteFailed is returned when a change could not be committed.
	ErrPersistenceWriteFailed = errors.New("failed to commit change")

	// ErrPositionOutOfRange is returned when a list position has no task.
	ErrPositionOutOfRange = errors.New("position out of range")
)
