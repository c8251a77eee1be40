package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Setting is one key/value row of the config view.
type Setting struct {
	Key   string
	Value string
}

// ConfigRenderer renders the resolved configuration.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a renderer using theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderSection renders a titled box with aligned key/value rows.
func (r *ConfigRenderer) RenderSection(title, path string, rows []Setting) string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Key))
	}

	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render(title))
	if path != "" {
		sb.WriteString("  ")
		sb.WriteString(r.theme.Subtle.Render(path))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		value := row.Value
		if value == "" {
			value = r.theme.Subtle.Render("(unset)")
		}
		fmt.Fprintf(&sb, "\n%s  %s",
			r.theme.Key.Render(fmt.Sprintf("%-*s", width, row.Key)),
			r.theme.Normal.Render(value),
		)
	}
	return r.theme.Box.Render(sb.String())
}

// RenderSections stacks sections vertically.
func (r *ConfigRenderer) RenderSections(sections ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderError renders err on one line.
func (r *ConfigRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("error: " + err.Error())
}
