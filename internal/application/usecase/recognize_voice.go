package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/logging"
)

// ErrEmptyTranscript is returned when speech was recognized as nothing.
var ErrEmptyTranscript = errors.New("empty transcript")

// DefaultVoiceTimeout bounds one capture and transcription round trip.
const DefaultVoiceTimeout = 15 * time.Second

// RecognizeVoiceUseCase captures one utterance in the active language.
type RecognizeVoiceUseCase struct {
	recognizer port.SpeechRecognizer
	timeout    time.Duration
}

// NewRecognizeVoiceUseCase creates a voice use case. A non-positive timeout
// uses DefaultVoiceTimeout.
func NewRecognizeVoiceUseCase(recognizer port.SpeechRecognizer, timeout time.Duration) *RecognizeVoiceUseCase {
	if timeout <= 0 {
		timeout = DefaultVoiceTimeout
	}
	return &RecognizeVoiceUseCase{
		recognizer: recognizer,
		timeout:    timeout,
	}
}

// Execute blocks until the utterance is transcribed, the timeout expires or
// ctx is cancelled. Run it off the main thread.
func (uc *RecognizeVoiceUseCase) Execute(ctx context.Context, lang entity.Language) (string, error) {
	log := logging.FromContext(ctx)
	tag := lang.SpeechTag()
	log.Debug().Str("language_tag", tag).Dur("timeout", uc.timeout).Msg("recognizing speech")

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.recognizer.Recognize(ctx, tag)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTranscript
	}

	log.Info().Str("language_tag", tag).Int("text_len", len(text)).Msg("speech recognized")
	return text, nil
}
