package theme

import (
	"os"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const preferDarkProperty = "gtk-application-prefer-dark-theme"

// DetectSystemDarkMode checks GTK_THEME first, then the GTK settings.
func DetectSystemDarkMode() bool {
	if gtkTheme := os.Getenv("GTK_THEME"); gtkTheme != "" {
		return strings.Contains(strings.ToLower(gtkTheme), "dark")
	}
	if settings := gtk.SettingsGetDefault(); settings != nil {
		if v, ok := settings.ObjectProperty(preferDarkProperty).(bool); ok {
			return v
		}
	}
	return false
}

// ResolveColorScheme maps a color_scheme setting to a dark mode preference.
func ResolveColorScheme(scheme string) bool {
	return resolveColorScheme(scheme, DetectSystemDarkMode)
}

func resolveColorScheme(scheme string, system func() bool) bool {
	switch strings.ToLower(scheme) {
	case "prefer-dark", "dark":
		return true
	case "prefer-light", "light":
		return false
	default:
		return system()
	}
}
