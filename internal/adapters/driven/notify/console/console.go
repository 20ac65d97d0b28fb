// Package console delivers reminder notifications to the terminal.
//
// It implements the driven.Notifier port by printing a styled banner
// to an io.Writer (stderr by default, so notifications do not mix with
// command output on stdout).
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
)

// Ensure Notifier implements the interface.
var _ driven.Notifier = (*Notifier)(nil)

// Notifier prints notifications to a terminal writer.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	title  lipgloss.Style
	body   lipgloss.Style
	banner lipgloss.Style
}

// NewNotifier creates a console notifier writing to stderr.
func NewNotifier() *Notifier {
	return &Notifier{
		out: os.Stderr,
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
		body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
		banner: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
	}
}

// SetOutput redirects notifications to a different writer.
// Useful for tests.
func (n *Notifier) SetOutput(w io.Writer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.out = w
}

// Notify prints a single notification as a bordered banner.
func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := n.title.Render(note.Title) + "\n" + n.body.Render(note.Body)

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintln(n.out, n.banner.Render(content)); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}
