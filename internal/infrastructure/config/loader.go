package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles settings loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	dataDir   string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDirs(dirs.ConfigHome, dirs.DataHome)
}

// NewManagerWithDirs creates a manager that reads settings from configDir
// and defaults paths.base_dir to dataDir.
func NewManagerWithDirs(configDir, dataDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName(settingsName)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// QB_SEARCH_TEMPLATE, QB_VOICE_ENABLED, ...
	v.SetEnvPrefix("QB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "QB_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind QB_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "QB_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind QB_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		dataDir:   dataDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads defaults, the settings file and the environment, in that order
// of increasing precedence. A missing settings file is created.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read settings file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.GetConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default settings at %s: %w", m.configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created settings file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates viper's current state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse settings file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.GetConfigFile(), err,
		)
	}

	normalizeConfig(config)
	if config.Paths.BaseDir == "" {
		config.Paths.BaseDir = m.dataDir
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Voice.CaptureCommand = append([]string(nil), m.config.Voice.CaptureCommand...)
	return &configCopy
}

// GetConfigFile returns the settings file path.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, settingsFileName)
}

// createDefaultConfig writes DefaultConfig to the settings file.
func (m *Manager) createDefaultConfig() error {
	return WriteConfig(DefaultConfig(), filepath.Join(m.configDir, settingsFileName))
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("search.template", defaults.Search.Template)
	m.viper.SetDefault("search.home_url", defaults.Search.HomeURL)

	m.viper.SetDefault("window.default_width", defaults.Window.DefaultWidth)
	m.viper.SetDefault("window.default_height", defaults.Window.DefaultHeight)

	m.viper.SetDefault("voice.enabled", defaults.Voice.Enabled)
	m.viper.SetDefault("voice.capture_command", defaults.Voice.CaptureCommand)
	m.viper.SetDefault("voice.endpoint", defaults.Voice.Endpoint)
	m.viper.SetDefault("voice.timeout_seconds", defaults.Voice.TimeoutSeconds)

	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("paths.base_dir", defaults.Paths.BaseDir)
}
