// Package theme styles the shell chrome with GTK CSS.
package theme

import "fmt"

// Palette holds the colors of the shell chrome.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
}

// DefaultDarkPalette returns the dark chrome colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#161618",
		Surface:    "#232326",
		Text:       "#f2f2f2",
		Muted:      "#8c8c8c",
		Accent:     "#4c8bf5",
		Border:     "#333336",
	}
}

// DefaultLightPalette returns the light chrome colors.
func DefaultLightPalette() Palette {
	return Palette{
		Background: "#f6f6f6",
		Surface:    "#ffffff",
		Text:       "#1c1c1c",
		Muted:      "#6b6b6b",
		Accent:     "#1a73e8",
		Border:     "#d9d9d9",
	}
}

// defineColors renders the palette as GTK @define-color rules.
func (p Palette) defineColors() string {
	return fmt.Sprintf(
		"@define-color qb_bg %s;\n@define-color qb_surface %s;\n@define-color qb_text %s;\n"+
			"@define-color qb_muted %s;\n@define-color qb_accent %s;\n@define-color qb_border %s;\n",
		p.Background, p.Surface, p.Text, p.Muted, p.Accent, p.Border,
	)
}
