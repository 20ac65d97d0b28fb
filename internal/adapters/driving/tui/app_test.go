package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// mockSearchService returns canned results.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
}

func (m *mockSearchService) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func testResults() []domain.SearchResult {
	return []domain.SearchResult{
		{
			Kind:  domain.KindQuote,
			Quote: &domain.Quote{ID: "q-1", Text: "Hope is the thing with feathers.", Author: "Emily Dickinson"},
			Score: 2.0,
		},
		{
			Kind:  domain.KindJournal,
			Entry: &domain.JournalEntry{ID: "e-1", Title: "Morning pages", Content: "Full of hope today."},
			Score: 1.0,
		},
	}
}

func newTestApp(t *testing.T, search *mockSearchService) *App {
	t.Helper()
	app, err := NewApp(&Ports{Search: search})
	require.NoError(t, err)

	// Simulate the initial window size message.
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(*App)
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(&Ports{Search: &mockSearchService{}})

	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestNewApp_MissingSearchService(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := newTestApp(t, &mockSearchService{})

	view := app.View()

	assert.Contains(t, view, "Solace")
	assert.Contains(t, view, "Type a query and press Enter.")
}

func TestApp_SearchFlow(t *testing.T) {
	app := newTestApp(t, &mockSearchService{results: testResults()})

	app.input.SetValue("hope")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	require.NotNil(t, cmd, "enter should trigger a search command")

	model, _ = app.Update(cmd())
	app = model.(*App)

	require.Len(t, app.Results(), 2)
	assert.Equal(t, 0, app.Selected())
	assert.Contains(t, app.View(), "Emily Dickinson")
	assert.Contains(t, app.View(), "Morning pages")
}

func TestApp_SearchFlow_EmptyQueryIgnored(t *testing.T) {
	app := newTestApp(t, &mockSearchService{results: testResults()})

	app.input.SetValue("   ")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestApp_SearchFlow_Error(t *testing.T) {
	app := newTestApp(t, &mockSearchService{err: errors.New("index exploded")})

	app.input.SetValue("hope")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	require.NotNil(t, cmd)

	model, _ = app.Update(cmd())
	app = model.(*App)

	require.Error(t, app.Err())
	assert.Contains(t, app.View(), "index exploded")
}

func TestApp_Navigation(t *testing.T) {
	app := newTestApp(t, &mockSearchService{})
	model, _ := app.Update(searchCompleted{results: testResults()})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.Selected())

	// Down at the bottom stays put.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.Selected())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.Selected())

	// Vim keys work too.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	app = model.(*App)
	assert.Equal(t, 1, app.Selected())
}

func TestApp_OpenDetail(t *testing.T) {
	app := newTestApp(t, &mockSearchService{})
	model, _ := app.Update(searchCompleted{results: testResults()})
	app = model.(*App)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	model, _ = app.Update(cmd())
	app = model.(*App)

	assert.Equal(t, modeDetail, app.mode)
	assert.Contains(t, app.View(), "Hope is the thing with feathers.")
	assert.Contains(t, app.View(), "esc: back")
}

func TestApp_DetailBackToResults(t *testing.T) {
	app := newTestApp(t, &mockSearchService{})
	model, _ := app.Update(searchCompleted{results: testResults()})
	app = model.(*App)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	model, _ = app.Update(cmd())
	app = model.(*App)
	require.Equal(t, modeDetail, app.mode)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)

	assert.Equal(t, modeResults, app.mode)
	assert.Nil(t, app.detail)
}

func TestApp_QuitKeys(t *testing.T) {
	app := newTestApp(t, &mockSearchService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	model, _ := app.Update(searchCompleted{results: testResults()})
	app = model.(*App)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_NewSearchFromResults(t *testing.T) {
	app := newTestApp(t, &mockSearchService{})
	model, _ := app.Update(searchCompleted{results: testResults()})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	app = model.(*App)

	assert.Equal(t, modeQuery, app.mode)
	assert.Empty(t, app.input.Value())
}

func TestApp_EscClearsQueryThenQuits(t *testing.T) {
	app := newTestApp(t, &mockSearchService{})
	app.input.SetValue("hope")

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Nil(t, cmd)
	assert.Empty(t, app.input.Value())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
