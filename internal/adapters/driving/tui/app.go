package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// mode identifies which part of the interface has focus.
type mode int

const (
	// modeQuery focuses the search input.
	modeQuery mode = iota

	// modeResults focuses the result list.
	modeResults

	// modeDetail shows a single result in full.
	modeDetail
)

// searchCompleted carries the outcome of an asynchronous search.
type searchCompleted struct {
	results []domain.SearchResult
	err     error
}

// detailLoaded carries a fully loaded result for the detail pane.
type detailLoaded struct {
	result domain.SearchResult
	err    error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	input    textinput.Model
	results  []domain.SearchResult
	selected int
	detail   *domain.SearchResult

	mode   mode
	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Search quotes and journal..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		input:  ti,
		mode:   modeQuery,
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.Width = max(20, msg.Width-10)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchCompleted:
		a.handleSearchCompleted(msg)
		return a, nil

	case detailLoaded:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.detail = &msg.result
		a.mode = modeDetail
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.mode {
	case modeQuery:
		return a.handleQueryKey(msg)
	case modeResults:
		return a.handleResultsKey(msg)
	case modeDetail:
		return a.handleDetailKey(msg)
	default:
		return a, nil
	}
}

func (a *App) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(a.input.Value())
		if query == "" {
			return a, nil
		}
		return a, a.performSearch(query)

	case tea.KeyEsc:
		if a.input.Value() != "" {
			a.input.SetValue("")
			return a, nil
		}
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		a.moveSelection(-1)
		return a, nil
	case tea.KeyDown:
		a.moveSelection(1)
		return a, nil
	case tea.KeyEnter:
		return a, a.openSelected()
	case tea.KeyEsc:
		a.mode = modeQuery
		a.input.Focus()
		return a, nil
	}

	switch msg.String() {
	case "k":
		a.moveSelection(-1)
	case "j":
		a.moveSelection(1)
	case "q":
		return a, tea.Quit
	case "/", "n":
		a.mode = modeQuery
		a.input.Focus()
		a.input.SetValue("")
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.detail = nil
		a.mode = modeResults
	}
	return a, nil
}

func (a *App) moveSelection(delta int) {
	next := a.selected + delta
	if next >= 0 && next < len(a.results) {
		a.selected = next
	}
}

// performSearch runs the query off the update loop.
func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Search.Search(a.ctx, query, domain.SearchOptions{})
		return searchCompleted{results: results, err: err}
	}
}

// openSelected loads the selected result for the detail pane, marking
// it read so usage counters stay accurate.
func (a *App) openSelected() tea.Cmd {
	if a.selected < 0 || a.selected >= len(a.results) {
		return nil
	}
	result := a.results[a.selected]

	return func() tea.Msg {
		switch result.Kind {
		case domain.KindQuote:
			if a.ports.Quotes != nil && result.Quote != nil {
				quote, err := a.ports.Quotes.MarkRead(a.ctx, result.Quote.ID)
				if err != nil {
					return detailLoaded{err: err}
				}
				result.Quote = quote
			}
		case domain.KindJournal:
			if a.ports.Journal != nil && result.Entry != nil {
				entry, err := a.ports.Journal.Get(a.ctx, result.Entry.ID)
				if err != nil {
					return detailLoaded{err: err}
				}
				result.Entry = entry
			}
		}
		return detailLoaded{result: result}
	}
}

func (a *App) handleSearchCompleted(msg searchCompleted) {
	if msg.err != nil {
		a.err = msg.err
		return
	}
	a.err = nil
	a.results = msg.results
	a.selected = 0
	a.mode = modeResults
	a.input.Blur()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.styles.Title.Render("Solace"),
		"",
		a.styles.InputField.Render(a.input.View()),
		"",
	}

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	if a.mode == modeDetail && a.detail != nil {
		sections = append(sections, a.renderDetail(*a.detail))
	} else {
		sections = append(sections, a.renderResults())
	}

	sections = append(sections, "", a.styles.Help.Render(a.helpLine()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderResults() string {
	if len(a.results) == 0 {
		if a.mode == modeResults {
			return a.styles.Muted.Render("  No results.")
		}
		return a.styles.Muted.Render("  Type a query and press Enter.")
	}

	lines := make([]string, 0, len(a.results))
	for i := range a.results {
		r := &a.results[i]
		line := fmt.Sprintf(" %s  %s", r.Title(), a.snippet(r))
		if i == a.selected && a.mode == modeResults {
			lines = append(lines, a.styles.Selected.Render("> "+line))
		} else {
			lines = append(lines, a.styles.Normal.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) snippet(r *domain.SearchResult) string {
	text := r.Text()
	if len(r.Highlights) > 0 {
		text = r.Highlights[0]
	}
	text = strings.ReplaceAll(text, "\n", " ")

	limit := max(20, a.width-30)
	runes := []rune(text)
	if len(runes) > limit {
		text = string(runes[:limit]) + "..."
	}
	return a.styles.Muted.Render(text)
}

func (a *App) renderDetail(r domain.SearchResult) string {
	var b strings.Builder

	switch r.Kind {
	case domain.KindQuote:
		if r.Quote != nil {
			b.WriteString(a.styles.Normal.Render(fmt.Sprintf("%q", r.Quote.Text)))
			if r.Quote.Author != "" {
				b.WriteString("\n\n")
				b.WriteString(a.styles.Muted.Render("- " + r.Quote.Author))
			}
		}
	case domain.KindJournal:
		if r.Entry != nil {
			if r.Entry.Title != "" {
				b.WriteString(a.styles.Title.Render(r.Entry.Title))
				b.WriteString("\n")
			}
			b.WriteString(a.styles.Muted.Render(r.Entry.CreatedAt.Format("Monday, 2 January 2006")))
			b.WriteString("\n\n")
			b.WriteString(a.styles.Normal.Render(r.Entry.Content))
		}
	}

	return a.styles.Detail.Width(max(40, a.width-4)).Render(b.String())
}

func (a *App) helpLine() string {
	switch a.mode {
	case modeQuery:
		return "enter: search • esc: clear/quit • ctrl+c: quit"
	case modeResults:
		return "↑/↓: navigate • enter: open • /: new search • q: quit"
	case modeDetail:
		return "esc: back • ctrl+c: quit"
	default:
		return ""
	}
}

// Accessors used by tests.

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult { return a.results }

// Selected returns the index of the highlighted result.
func (a *App) Selected() int { return a.selected }

// Err returns the last error shown to the user.
func (a *App) Err() error { return a.err }
