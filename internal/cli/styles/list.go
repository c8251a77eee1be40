package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qualzed/qb/internal/domain/url"
)

const (
	cursorSelected = "> "
	cursorEmpty    = "  "

	maxURLRunes = 70
)

// HistoryItem is one history log line in the picker.
type HistoryItem struct {
	URL string
	// Index is the 0-based line in the log, oldest first.
	Index int
}

// FilterValue implements list.Item.
func (i HistoryItem) FilterValue() string {
	return i.URL
}

// Host returns the URL's host without "www.", or "" when it has none.
func (i HistoryItem) Host() string {
	return url.Host(i.URL)
}

// HistoryDelegate renders history items on one line each.
type HistoryDelegate struct {
	Theme *Theme
}

// Height implements list.ItemDelegate.
func (HistoryDelegate) Height() int { return 1 }

// Spacing implements list.ItemDelegate.
func (HistoryDelegate) Spacing() int { return 0 }

// Update implements list.ItemDelegate.
func (HistoryDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate.
func (d HistoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	hi, ok := item.(HistoryItem)
	if !ok {
		return
	}
	t := d.Theme

	cursor := cursorEmpty
	urlStyle := t.ListItemTitle
	if index == m.Index() {
		cursor = cursorSelected
		urlStyle = urlStyle.Foreground(t.Accent).Bold(true)
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		urlStyle.Render(Truncate(hi.URL, maxURLRunes)),
	)
	if host := hi.Host(); host != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Left, line, " ", t.Badge.Render(host))
	}
	_, _ = fmt.Fprint(w, line)
}

// NewHistoryList creates a themed list of history items.
func NewHistoryList(theme *Theme, items []HistoryItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, HistoryDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)
	return l
}

// Truncate shortens s to at most maxRunes runes, ending with an ellipsis.
func Truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes || maxRunes < 1 {
		return s
	}
	return string(r[:maxRunes-1]) + "…"
}
