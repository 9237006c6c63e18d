package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/width"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled is set from terminal detection and may be overridden.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int)}
}

// SetMaxWidth caps the visible width of a column. Longer cells are
// truncated with "...". A width of zero or less removes the cap.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if maxWidth <= 0 {
		delete(t.maxWidths, col)
		return
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is not padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(row)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts[i] = col
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth terminal cells, ending in "..."
// when it had to be cut. ANSI escape codes are kept and a reset is appended
// if any were present. Widths below 4 hard-cut without an ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit, tail := maxWidth, ""
	if maxWidth > len(ellipsis) {
		limit, tail = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		if r == '\033' {
			inEscape, hasAnsi = true, true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			w := runeWidth(r)
			if visible+w > limit {
				break
			}
			visible += w
		}
		b.WriteRune(r)
	}

	b.WriteString(tail)
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the number of terminal cells s occupies, excluding
// ANSI escape codes.
func visibleWidth(s string) int {
	cells := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			cells += runeWidth(r)
		}
	}
	return cells
}

// runeWidth returns 2 for East Asian wide and fullwidth runes, 1 otherwise.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
