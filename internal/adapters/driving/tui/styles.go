package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the pre-configured lipgloss styles for the TUI.
type Styles struct {
	// Title style for the header.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted result.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for the query input.
	InputField lipgloss.Style

	// Detail style for the detail pane.
	Detail lipgloss.Style

	// Help style for the key hints.
	Help lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	var (
		primary    = lipgloss.Color("#7C3AED")
		foreground = lipgloss.Color("#CDD6F4")
		muted      = lipgloss.Color("#6C7086")
		errColor   = lipgloss.Color("#F38BA8")
		border     = lipgloss.Color("#45475A")
	)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Normal: lipgloss.NewStyle().
			Foreground(foreground),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground).
			Background(primary),

		Error: lipgloss.NewStyle().
			Foreground(errColor),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Detail: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),

		Help: lipgloss.NewStyle().
			Foreground(muted),
	}
}
