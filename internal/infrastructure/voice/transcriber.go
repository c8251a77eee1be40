package voice

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/qualzed/qb/internal/logging"
)

const (
	transcribeRetries   = 1
	transcribeRetryWait = 500 * time.Millisecond
	userAgent           = "qb-voice/1.0"
)

// Transcriber converts recorded audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageTag string) (string, error)
}

// transcription is the JSON body returned by a whisper.cpp server.
type transcription struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// HTTPTranscriber posts WAV audio to a whisper.cpp compatible /inference endpoint.
type HTTPTranscriber struct {
	client   *resty.Client
	endpoint string
}

// NewHTTPTranscriber creates a transcriber for endpoint.
func NewHTTPTranscriber(endpoint string) *HTTPTranscriber {
	client := resty.New().
		SetRetryCount(transcribeRetries).
		SetRetryWaitTime(transcribeRetryWait).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPTranscriber{
		client:   client,
		endpoint: endpoint,
	}
}

// Transcribe uploads audio as multipart form field "file". Only the primary
// subtag of languageTag is sent ("ru-RU" -> "ru").
func (t *HTTPTranscriber) Transcribe(ctx context.Context, audio []byte, languageTag string) (string, error) {
	log := logging.FromContext(ctx)

	var result transcription
	resp, err := t.client.R().
		SetContext(ctx).
		SetFileReader("file", "speech.wav", bytes.NewReader(audio)).
		SetFormData(map[string]string{
			"language":        primarySubtag(languageTag),
			"response_format": "json",
		}).
		SetResult(&result).
		SetError(&result).
		Post(t.endpoint)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	if resp.IsError() {
		if result.Error != "" {
			return "", fmt.Errorf("transcription failed: %s: %s", resp.Status(), result.Error)
		}
		return "", fmt.Errorf("transcription failed: %s", resp.Status())
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("transcription received")

	return strings.TrimSpace(result.Text), nil
}

func primarySubtag(tag string) string {
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		return strings.ToLower(tag[:i])
	}
	return strings.ToLower(tag)
}
