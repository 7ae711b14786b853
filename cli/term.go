package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	colorName     = color.New(color.FgMagenta, color.Bold)
	colorCategory = color.New(color.FgCyan)
	colorMuted    = color.New(color.FgWhite, color.Faint)
	colorWarn     = color.New(color.FgYellow)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// fitLine returns the first line of s cut to width cells.
func fitLine(s string, width int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
