package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "абв…", Truncate("абвгдеж", 4))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestHistoryItem_Host(t *testing.T) {
	assert.Equal(t, "example.org", HistoryItem{URL: "https://example.org/a?b=1"}.Host())
	assert.Equal(t, "example.org", HistoryItem{URL: "https://www.example.org/"}.Host())
	assert.Equal(t, "", HistoryItem{URL: "not a url"}.Host())
}

func TestConfigRenderer_RenderSection(t *testing.T) {
	r := NewConfigRenderer(NewTheme())

	out := r.RenderSection("Settings", "/tmp/settings.toml", []Setting{
		{Key: "search.template", Value: "https://example.org/?q=%s"},
		{Key: "paths.base_dir", Value: ""},
	})

	assert.Contains(t, out, "search.template")
	assert.Contains(t, out, "https://example.org/?q=%s")
	assert.Contains(t, out, "(unset)")
	assert.Contains(t, r.RenderError(errors.New("boom")), "error: boom")
}
