package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/td/internal/model"
	"github.com/jacksmith/td/internal/tasks"
)

// ResolveRef turns a task reference into a 0-based position in l.
// A reference is either a 1-based list position ("2") or a task ID ("T-07").
func ResolveRef(l *tasks.List, ref string) (int, error) {
	ref = strings.TrimSpace(ref)

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > l.Len() {
			return 0, &ValidationError{
				Field:   "position",
				Message: fmt.Sprintf("%d is not between 1 and %d", n, l.Len()),
			}
		}
		return n - 1, nil
	}

	if !model.IsTaskID(ref) {
		return 0, &ValidationError{
			Field:   "task reference",
			Message: fmt.Sprintf("%q is neither a position nor a task ID", ref),
		}
	}

	pos := l.PositionOf(ref)
	if pos < 0 {
		return 0, &NotFoundError{Ref: model.NormalizeID(ref)}
	}
	return pos, nil
}
