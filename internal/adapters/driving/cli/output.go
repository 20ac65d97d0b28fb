package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Shared output styles. Commands print plain text when a style does not
// apply; these exist so lists and headers look consistent.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))
)

const favoriteMark = "★"

// termWidth returns the terminal width, or 80 when stdout is not a
// terminal (tests, pipes).
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if maxLen <= 3 || len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
