package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Fallback terminal size when neither the terminal nor the environment knows.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}

// TerminalSize returns the size of the terminal behind f. It falls back to
// $COLUMNS and $LINES, then to 80x24.
func TerminalSize(f *os.File) (int, int) {
	if f != nil {
		width, height, err := term.GetSize(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
		if err == nil && width > 0 && height > 0 {
			return width, height
		}
	}
	return envSize("COLUMNS", defaultWidth), envSize("LINES", defaultHeight)
}

func envSize(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
