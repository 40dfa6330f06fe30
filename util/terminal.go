package util

import (
	"golang.org/x/term"
)

// IsTerminal reports whether fd is attached to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// TerminalWidth returns the column width of the terminal attached to fd, or
// fallback when fd is not a terminal or its size cannot be determined
func TerminalWidth(fd int, fallback int) int {
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
