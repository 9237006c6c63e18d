package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// TaskPrefix is the prefix of every task ID.
const TaskPrefix = "T"

var (
	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// taskIDRegex matches task IDs like T-07, t-7, T-007
	taskIDRegex = regexp.MustCompile(`^[Tt]-(\d+)$`)
)

// ParseTaskID parses a task ID string and returns its number.
// Accepts various formats: T-07, t-7, T-007 all parse to 7.
// Returns ErrInvalidID if the format is invalid.
func ParseTaskID(s string) (int, error) {
	matches := taskIDRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a valid task ID", ErrInvalidID, s)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil || num <= 0 {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}

	return num, nil
}

// FormatTaskID formats a task ID with at least two digits (T-01...T-99, T-100).
func FormatTaskID(num int) string {
	return fmt.Sprintf("%s-%02d", TaskPrefix, num)
}

// NormalizeID returns the canonical form of an ID.
// Unparseable input is returned unchanged.
func NormalizeID(s string) string {
	num, err := ParseTaskID(s)
	if err != nil {
		return s
	}
	return FormatTaskID(num)
}

// ExtractNumber extracts the numeric part from a task ID.
// Returns 0 if the ID is invalid.
func ExtractNumber(id string) int {
	num, err := ParseTaskID(id)
	if err != nil {
		return 0
	}
	return num
}

// IsTaskID returns true if s is a well-formed task ID.
func IsTaskID(s string) bool {
	_, err := ParseTaskID(s)
	return err == nil
}
