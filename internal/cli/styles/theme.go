// Package styles provides the lipgloss styles and list delegates of the CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds terminal colors and the styles derived from them.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	ListItemTitle lipgloss.Style
	ListItemDesc  lipgloss.Style

	Badge lipgloss.Style
	Box   lipgloss.Style
	Key   lipgloss.Style
}

// NewTheme returns the dark terminal theme.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color("#161618"),
		Surface:    lipgloss.Color("#232326"),
		Text:       lipgloss.Color("#f2f2f2"),
		Muted:      lipgloss.Color("#8c8c8c"),
		Accent:     lipgloss.Color("#4c8bf5"),
		Border:     lipgloss.Color("#333336"),
		Error:      lipgloss.Color("#ef4444"),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	t.ListItemTitle = lipgloss.NewStyle().Foreground(t.Text)
	t.ListItemDesc = lipgloss.NewStyle().Foreground(t.Muted)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	t.Key = lipgloss.NewStyle().Foreground(t.Accent)
}
