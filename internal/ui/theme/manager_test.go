package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qualzed/qb/internal/infrastructure/config"
)

func TestResolveColorScheme(t *testing.T) {
	systemDark := func() bool { return true }

	assert.True(t, resolveColorScheme("prefer-dark", systemDark))
	assert.False(t, resolveColorScheme("PREFER-LIGHT", systemDark))
	assert.True(t, resolveColorScheme("default", systemDark))
	assert.False(t, resolveColorScheme("", func() bool { return false }))
}

func TestDetectSystemDarkMode_GTKThemeEnv(t *testing.T) {
	t.Setenv("GTK_THEME", "Adwaita:dark")
	assert.True(t, DetectSystemDarkMode())

	t.Setenv("GTK_THEME", "Adwaita")
	assert.False(t, DetectSystemDarkMode())
}

func TestGenerateCSS_UsesPalette(t *testing.T) {
	css := GenerateCSS(DefaultDarkPalette())

	assert.Contains(t, css, "@define-color qb_accent #4c8bf5;")
	assert.Contains(t, css, ".tab-bar .tab-button-active")
	assert.Contains(t, css, ".toolbar entry")
}

func TestManager_PaletteFollowsScheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.ColorScheme = "prefer-light"

	m := NewManager(context.Background(), cfg)
	assert.False(t, m.PrefersDark())
	assert.Equal(t, DefaultLightPalette(), m.Palette())

	cfg.Appearance.ColorScheme = "prefer-dark"
	assert.True(t, m.UpdateFromConfig(context.Background(), cfg, nil))
	assert.Equal(t, DefaultDarkPalette(), m.Palette())

	assert.False(t, m.UpdateFromConfig(context.Background(), cfg, nil), "unchanged scheme")
}
