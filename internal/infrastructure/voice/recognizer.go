package voice

import (
	"context"
	"fmt"

	"github.com/qualzed/qb/internal/application/port"
)

// Recognizer captures audio and transcribes it.
type Recognizer struct {
	capturer    AudioCapturer
	transcriber Transcriber
}

// NewRecognizer combines a capturer and a transcriber.
func NewRecognizer(capturer AudioCapturer, transcriber Transcriber) *Recognizer {
	return &Recognizer{
		capturer:    capturer,
		transcriber: transcriber,
	}
}

// Recognize records one utterance and returns its transcription.
func (r *Recognizer) Recognize(ctx context.Context, languageTag string) (string, error) {
	audio, err := r.capturer.Capture(ctx)
	if err != nil {
		return "", err
	}
	text, err := r.transcriber.Transcribe(ctx, audio, languageTag)
	if err != nil {
		return "", fmt.Errorf("transcribe %s audio: %w", languageTag, err)
	}
	return text, nil
}

var _ port.SpeechRecognizer = (*Recognizer)(nil)
