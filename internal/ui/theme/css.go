package theme

import "strings"

// GenerateCSS builds the stylesheet for the toolbar and tab strip.
func GenerateCSS(p Palette) string {
	var sb strings.Builder
	sb.WriteString(p.defineColors())
	sb.WriteString("\n")
	sb.WriteString(toolbarCSS)
	sb.WriteString("\n")
	sb.WriteString(tabBarCSS)
	return sb.String()
}

const toolbarCSS = `.toolbar {
  background-color: @qb_bg;
  border-bottom: 1px solid @qb_border;
}

.toolbar entry {
  background-color: @qb_surface;
  color: @qb_text;
}
`

const tabBarCSS = `.tab-bar {
  background-color: @qb_bg;
  padding: 2px 4px;
}

.tab-bar .tab-button {
  color: @qb_muted;
  min-width: 80px;
}

.tab-bar .tab-button-active {
  color: @qb_text;
  background-color: @qb_surface;
  box-shadow: inset 0 -2px @qb_accent;
}

.tab-bar .tab-close {
  min-width: 16px;
  min-height: 16px;
  padding: 0;
}
`
