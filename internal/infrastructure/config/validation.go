package config

import (
	"fmt"
	"strings"

	"github.com/qualzed/qb/internal/domain/url"
)

func normalizeConfig(config *Config) {
	config.Search.Template = strings.TrimSpace(config.Search.Template)
	config.Search.HomeURL = url.Normalize(config.Search.HomeURL)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Paths.BaseDir = strings.TrimSpace(config.Paths.BaseDir)
	config.Appearance.ColorScheme = strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme))

	if config.Search.Template == "" {
		config.Search.Template = url.DefaultSearchTemplate
	}
	if config.Search.HomeURL == "" {
		config.Search.HomeURL = url.DefaultHomeURL
	}
	if config.Appearance.ColorScheme == "" {
		config.Appearance.ColorScheme = defaultColorScheme
	}
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
}

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateVoice(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateSearch(config *Config) []string {
	var validationErrors []string
	if !url.ValidSearchTemplate(config.Search.Template) {
		validationErrors = append(validationErrors, "search.template must be an absolute http(s) URL")
	}
	if strings.Count(config.Search.Template, "%s") > 1 {
		validationErrors = append(validationErrors, "search.template must contain at most one %s")
	}
	if !url.LooksLikeURL(config.Search.HomeURL) {
		validationErrors = append(validationErrors, "search.home_url must be a URL")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.DefaultWidth < 1 {
		validationErrors = append(validationErrors, "window.default_width must be positive")
	}
	if config.Window.DefaultHeight < 1 {
		validationErrors = append(validationErrors, "window.default_height must be positive")
	}
	return validationErrors
}

func validateVoice(config *Config) []string {
	if !config.Voice.Enabled {
		return nil
	}
	var validationErrors []string
	if len(config.Voice.CaptureCommand) == 0 {
		validationErrors = append(validationErrors, "voice.capture_command must not be empty when voice is enabled")
	}
	if config.Voice.Endpoint == "" {
		validationErrors = append(validationErrors, "voice.endpoint must not be empty when voice is enabled")
	}
	if config.Voice.TimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "voice.timeout_seconds must be positive")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	switch config.Appearance.ColorScheme {
	case "default", "prefer-dark", "prefer-light":
		return nil
	}
	return []string{fmt.Sprintf("appearance.color_scheme %q is not one of default, prefer-dark, prefer-light", config.Appearance.ColorScheme)}
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format %q is not one of console, json", config.Logging.Format))
	}
	return validationErrors
}
