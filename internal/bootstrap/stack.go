// Package bootstrap builds the stores and use cases shared by the GUI and
// the CLI.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/xid"

	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/infrastructure/config"
	"github.com/qualzed/qb/internal/infrastructure/locale"
	"github.com/qualzed/qb/internal/infrastructure/persistence/file"
	"github.com/qualzed/qb/internal/infrastructure/voice"
	"github.com/qualzed/qb/internal/logging"
)

const (
	engineDirName = "webkit"
	logTimeFormat = "15:04:05"
)

// Stack holds the stores and use cases built from the settings.
type Stack struct {
	BaseDir       string
	EngineDataDir string

	ConfigRepo  *file.ConfigRepository
	HistoryRepo *file.HistoryRepository
	Localizer   *locale.Store

	TabsUC     *usecase.ManageTabsUseCase
	SearchUC   *usecase.SubmitSearchUseCase
	SettingsUC *usecase.ManageSettingsUseCase
	HistoryUC  *usecase.BrowseHistoryUseCase
	// VoiceUC is nil when voice.enabled is false.
	VoiceUC *usecase.RecognizeVoiceUseCase
}

// LoadConfig loads the settings file. On failure it returns the defaults and
// the error so the caller can log it once a logger exists.
func LoadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), fmt.Errorf("load settings: %w", err)
	}
	return mgr, mgr.Get(), nil
}

// NewContext returns a context carrying a logger configured from cfg.
func NewContext(ctx context.Context, cfg *config.Config) context.Context {
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     logging.ParseFormat(cfg.Logging.Format),
		TimeFormat: logTimeFormat,
	})
	return logging.WithContext(ctx, logger)
}

// NewTabID returns a globally unique, sortable tab identifier.
func NewTabID() string {
	return xid.New().String()
}

// BuildStack opens the stores under cfg.Paths.BaseDir and wires the use cases.
func BuildStack(ctx context.Context, cfg *config.Config) (*Stack, error) {
	log := logging.FromContext(ctx)

	baseDir := cfg.Paths.BaseDir
	if baseDir == "" {
		dataDir, err := config.GetDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data directory: %w", err)
		}
		baseDir = dataDir
	}

	localizer, err := locale.NewStore()
	if err != nil {
		return nil, fmt.Errorf("load locale tables: %w", err)
	}

	configRepo := file.NewConfigRepository(file.ConfigPath(baseDir), cfg.Window.DefaultWidth, cfg.Window.DefaultHeight)
	historyRepo := file.NewHistoryRepository(file.HistoryPath(baseDir))

	settingsUC := usecase.NewManageSettingsUseCase(configRepo)
	if _, err := settingsUC.Init(ctx); err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
	}

	s := &Stack{
		BaseDir:       baseDir,
		EngineDataDir: filepath.Join(baseDir, engineDirName),
		ConfigRepo:    configRepo,
		HistoryRepo:   historyRepo,
		Localizer:     localizer,
		TabsUC:        usecase.NewManageTabsUseCase(NewTabID, cfg.Search.HomeURL),
		SearchUC:      usecase.NewSubmitSearchUseCase(historyRepo, cfg.Search.Template),
		SettingsUC:    settingsUC,
		HistoryUC:     usecase.NewBrowseHistoryUseCase(historyRepo),
	}

	if cfg.Voice.Enabled {
		recognizer := voice.NewRecognizer(
			voice.NewCommandCapturer(cfg.Voice.CaptureCommand),
			voice.NewHTTPTranscriber(cfg.Voice.Endpoint),
		)
		s.VoiceUC = usecase.NewRecognizeVoiceUseCase(recognizer, cfg.VoiceTimeout())
	}

	log.Debug().
		Str("base_dir", baseDir).
		Str("config", configRepo.Path()).
		Str("history", historyRepo.Path()).
		Bool("voice", s.VoiceUC != nil).
		Msg("stack built")

	return s, nil
}
