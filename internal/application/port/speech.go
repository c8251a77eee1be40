package port

import "context"

//go:generate mockgen -source=speech.go -destination=mocks/mock_speech.go -package=mocks

// SpeechRecognizer turns one spoken utterance into text.
type SpeechRecognizer interface {
	// Recognize listens for a single utterance and transcribes it using the
	// BCP-47 language tag. It blocks until ctx is done or a result is ready.
	Recognize(ctx context.Context, languageTag string) (string, error)
}
