package config

import (
	"time"

	"github.com/qualzed/qb/internal/domain/url"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultWindowWidth  = 800
	defaultWindowHeight = 600

	defaultVoiceEndpoint       = "http://127.0.0.1:8080/inference"
	defaultVoiceTimeoutSeconds = 15

	defaultColorScheme = "default"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// defaultCaptureCommand records five seconds of 16 kHz mono audio.
func defaultCaptureCommand() []string {
	return []string{"arecord", "-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-d", "5", "-t", "wav", "-"}
}

// DefaultConfig returns the settings used when the file sets nothing.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Template: url.DefaultSearchTemplate,
			HomeURL:  url.DefaultHomeURL,
		},
		Window: WindowConfig{
			DefaultWidth:  defaultWindowWidth,
			DefaultHeight: defaultWindowHeight,
		},
		Voice: VoiceConfig{
			Enabled:        true,
			CaptureCommand: defaultCaptureCommand(),
			Endpoint:       defaultVoiceEndpoint,
			TimeoutSeconds: defaultVoiceTimeoutSeconds,
		},
		Appearance: AppearanceConfig{
			ColorScheme: defaultColorScheme,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// VoiceTimeout returns the voice timeout as a duration.
func (c *Config) VoiceTimeout() time.Duration {
	return time.Duration(c.Voice.TimeoutSeconds) * time.Second
}
