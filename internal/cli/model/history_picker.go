// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qualzed/qb/internal/cli/styles"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeLines   = 4
)

// HistoryLister reads the history log, newest first.
type HistoryLister interface {
	List(ctx context.Context) ([]entity.HistoryEntry, error)
}

// HistoryPicker lets the user choose one history entry to reopen.
type HistoryPicker struct {
	list  list.Model
	help  help.Model
	keys  styles.PickerKeyMap
	theme *styles.Theme

	loaded bool
	chosen string
	err    error
	width  int
	height int

	ctx     context.Context
	history HistoryLister
}

// NewHistoryPicker creates a picker over history.
func NewHistoryPicker(ctx context.Context, theme *styles.Theme, history HistoryLister) HistoryPicker {
	logging.FromContext(ctx).Debug().Msg("creating history picker")

	return HistoryPicker{
		list:    styles.NewHistoryList(theme, nil, defaultWidth, defaultHeight-chromeLines),
		help:    help.New(),
		keys:    styles.DefaultPickerKeyMap(),
		theme:   theme,
		width:   defaultWidth,
		height:  defaultHeight,
		ctx:     ctx,
		history: history,
	}
}

// historyLoadedMsg carries the log contents.
type historyLoadedMsg struct {
	entries []entity.HistoryEntry
	err     error
}

// Init implements tea.Model.
func (m HistoryPicker) Init() tea.Cmd {
	return m.loadHistory
}

func (m HistoryPicker) loadHistory() tea.Msg {
	entries, err := m.history.List(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load history")
	}
	return historyLoadedMsg{entries: entries, err: err}
}

// Update implements tea.Model.
func (m HistoryPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, max(msg.Height-chromeLines, 1))
		return m, nil

	case historyLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.entries))
		for i, e := range msg.entries {
			items[i] = styles.HistoryItem{URL: e.URL, Index: e.Index}
		}
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		// While typing a filter every key belongs to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Open):
			if hi, ok := m.list.SelectedItem().(styles.HistoryItem); ok {
				m.chosen = hi.URL
				logging.FromContext(m.ctx).Debug().Str("url", hi.URL).Msg("history entry chosen")
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m HistoryPicker) View() string {
	t := m.theme

	header := t.Title.Render("qb history")
	if m.loaded && m.err == nil {
		header += "  " + t.Subtle.Render(pluralEntries(len(m.list.Items())))
	}

	var body string
	switch {
	case m.err != nil:
		body = t.ErrorStyle.Render("Error: " + m.err.Error())
	case !m.loaded:
		body = t.Subtle.Render("Loading…")
	case len(m.list.Items()) == 0:
		body = t.Subtle.Render("History is empty")
	default:
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.help.View(m.keys))
}

// Chosen returns the URL selected with enter, or "".
func (m HistoryPicker) Chosen() string {
	return m.chosen
}

// Err returns the error that prevented loading, if any.
func (m HistoryPicker) Err() error {
	return m.err
}

func pluralEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return strconv.Itoa(n) + " entries"
}
