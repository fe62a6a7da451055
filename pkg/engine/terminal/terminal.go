// Package terminal probes the attached terminal so wide maps can be cropped.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not a terminal
const DefaultWidth = 80

// Width returns the current terminal width, or DefaultWidth if stdout is
// redirected or the size cannot be determined.
func Width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColumnsThatFit returns how many grid columns of cellWidth characters fit in
// width, capped at cols. At least one column is always returned when cols > 0.
func ColumnsThatFit(width, cols, cellWidth int) int {
	if cols <= 0 {
		return 0
	}
	if cellWidth <= 0 {
		cellWidth = 1
	}
	fit := width / cellWidth
	if fit < 1 {
		fit = 1
	}
	if fit > cols {
		fit = cols
	}
	return fit
}
