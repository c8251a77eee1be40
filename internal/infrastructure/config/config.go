// Package config loads qb's application settings from
// $XDG_CONFIG_HOME/qb/settings.toml and QB_* environment variables.
package config

// Config holds the application settings. The user's language and window size
// are not here; they live in the user config file.
type Config struct {
	Search     SearchConfig     `mapstructure:"search" toml:"search" json:"search" jsonschema:"description=Search engine and home page"`
	Window     WindowConfig     `mapstructure:"window" toml:"window" json:"window" jsonschema:"description=Window size used before one has been saved"`
	Voice      VoiceConfig      `mapstructure:"voice" toml:"voice" json:"voice" jsonschema:"description=Voice search capture and transcription"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Paths      PathsConfig      `mapstructure:"paths" toml:"paths" json:"paths"`
}

// SearchConfig configures search dispatch.
type SearchConfig struct {
	// Template is the search URL; %s is replaced by the escaped query.
	Template string `mapstructure:"template" toml:"template" json:"template" jsonschema:"description=Search URL template. %s is replaced by the escaped query; without it the query is appended"`
	HomeURL  string `mapstructure:"home_url" toml:"home_url" json:"home_url" jsonschema:"description=Page opened by the home button and new tabs"`
}

// WindowConfig holds the default window geometry.
type WindowConfig struct {
	DefaultWidth  int `mapstructure:"default_width" toml:"default_width" json:"default_width" jsonschema:"minimum=1"`
	DefaultHeight int `mapstructure:"default_height" toml:"default_height" json:"default_height" jsonschema:"minimum=1"`
}

// VoiceConfig configures voice search.
type VoiceConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// CaptureCommand records one utterance and writes WAV audio to stdout.
	CaptureCommand []string `mapstructure:"capture_command" toml:"capture_command" json:"capture_command" jsonschema:"description=Command that records one utterance as WAV on stdout"`
	// Endpoint is a whisper.cpp compatible transcription endpoint.
	Endpoint       string `mapstructure:"endpoint" toml:"endpoint" json:"endpoint" jsonschema:"description=Speech transcription endpoint (whisper.cpp server /inference API)"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" jsonschema:"minimum=1"`
}

// AppearanceConfig styles the shell chrome.
type AppearanceConfig struct {
	// ColorScheme is "default" (follow GTK), "prefer-dark" or "prefer-light".
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// PathsConfig locates user data.
type PathsConfig struct {
	// BaseDir holds config/qb.cfg and user/history.qb. Empty means
	// $XDG_DATA_HOME/qb.
	BaseDir string `mapstructure:"base_dir" toml:"base_dir" json:"base_dir" jsonschema:"description=Directory holding config/qb.cfg and user/history.qb (default $XDG_DATA_HOME/qb)"`
}
