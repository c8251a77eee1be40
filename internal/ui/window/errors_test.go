package window

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qualzed/qb/internal/ui/coordinator"
)

func TestWindowError(t *testing.T) {
	err := ErrWidgetCreationFailed("toolbar")
	assert.EqualError(t, err, "failed to create widget: toolbar")

	var werr WindowError
	assert.True(t, errors.As(err, &werr))
	assert.True(t, errors.Is(ErrWindowCreationFailed, ErrWindowCreationFailed))
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, appTitle, formatTitle(""))
	assert.Equal(t, "Example - qb", formatTitle("Example"))

	long := make([]rune, maxTitleRunes+10)
	for i := range long {
		long[i] = 'я'
	}
	got := []rune(formatTitle(string(long)))
	assert.LessOrEqual(t, len(got), maxTitleRunes+len(" - qb"))
}

func TestVoiceLabel_KeepsListeningWhileBusy(t *testing.T) {
	en := coordinator.Labels{Voice: "Voice", VoiceListening: "Listening..."}

	assert.Equal(t, "Voice", voiceLabel(en, false))
	assert.Equal(t, "Listening...", voiceLabel(en, true))
}
