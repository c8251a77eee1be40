package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/qualzed/qb/internal/infrastructure/config"
	"github.com/qualzed/qb/internal/logging"
)

// Manager holds the color scheme and the CSS provider installed on the display.
type Manager struct {
	scheme      string
	prefersDark bool
	provider    *gtk.CSSProvider
}

// NewManager resolves the color scheme from cfg.
func NewManager(ctx context.Context, cfg *config.Config) *Manager {
	scheme := "default"
	if cfg != nil && cfg.Appearance.ColorScheme != "" {
		scheme = cfg.Appearance.ColorScheme
	}
	m := &Manager{scheme: scheme, prefersDark: ResolveColorScheme(scheme)}

	logging.FromContext(ctx).Debug().
		Str("scheme", scheme).
		Bool("prefers_dark", m.prefersDark).
		Msg("theme manager initialized")
	return m
}

// PrefersDark reports whether the dark palette is active.
func (m *Manager) PrefersDark() bool {
	return m.prefersDark
}

// Palette returns the active palette.
func (m *Manager) Palette() Palette {
	if m.prefersDark {
		return DefaultDarkPalette()
	}
	return DefaultLightPalette()
}

// ApplyToDisplay installs or refreshes the stylesheet.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)
	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	if settings := gtk.SettingsGetDefault(); settings != nil && m.scheme != "default" {
		settings.SetObjectProperty(preferDarkProperty, m.prefersDark)
	}

	if m.provider == nil {
		m.provider = gtk.NewCSSProvider()
		gtk.StyleContextAddProviderForDisplay(display, m.provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	}
	m.provider.LoadFromString(GenerateCSS(m.Palette()))

	log.Debug().Bool("dark_mode", m.prefersDark).Msg("theme CSS applied to display")
}

// UpdateFromConfig re-resolves the scheme after a settings reload. Returns
// true when the stylesheet changed.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.Config, display *gdk.Display) bool {
	if cfg == nil || cfg.Appearance.ColorScheme == m.scheme {
		return false
	}
	m.scheme = cfg.Appearance.ColorScheme
	m.prefersDark = ResolveColorScheme(m.scheme)

	logging.FromContext(ctx).Info().
		Str("scheme", m.scheme).
		Bool("prefers_dark", m.prefersDark).
		Msg("color scheme changed")

	if display != nil {
		m.ApplyToDisplay(ctx, display)
	}
	return true
}
