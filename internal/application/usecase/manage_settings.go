package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/domain/repository"
	"github.com/qualzed/qb/internal/logging"
)

// LanguageListener is notified after the active language changed.
type LanguageListener func(lang entity.Language)

// ManageSettingsUseCase owns the active UI language and the persisted window
// size. Language changes go through ChangeLanguage only.
type ManageSettingsUseCase struct {
	configRepo repository.ConfigRepository

	mu        sync.RWMutex
	current   entity.Config
	listeners map[int]LanguageListener
	nextID    int
}

// NewManageSettingsUseCase creates a settings use case backed by configRepo.
// Until Init runs the active language is entity.DefaultLanguage.
func NewManageSettingsUseCase(configRepo repository.ConfigRepository) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{
		configRepo: configRepo,
		current:    entity.Config{Language: entity.DefaultLanguage},
		listeners:  make(map[int]LanguageListener),
	}
}

// Init loads the stored config and makes its language active.
func (uc *ManageSettingsUseCase) Init(ctx context.Context) (entity.Config, error) {
	cfg, err := uc.configRepo.Load(ctx)
	if err != nil {
		return entity.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Language.Valid() {
		cfg.Language = entity.DefaultLanguage
	}

	uc.mu.Lock()
	uc.current = cfg
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("language", string(cfg.Language)).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("settings loaded")

	return cfg, nil
}

// Language returns the active language.
func (uc *ManageSettingsUseCase) Language() entity.Language {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current.Language
}

// Config returns the last loaded or saved config.
func (uc *ManageSettingsUseCase) Config() entity.Config {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Subscribe registers fn for language changes. The returned function removes it.
func (uc *ManageSettingsUseCase) Subscribe(fn LanguageListener) (unsubscribe func()) {
	uc.mu.Lock()
	id := uc.nextID
	uc.nextID++
	uc.listeners[id] = fn
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		delete(uc.listeners, id)
		uc.mu.Unlock()
	}
}

// ChangeLanguage persists lang and makes it active, then notifies listeners.
// Unsupported languages and failed saves leave the active language unchanged.
func (uc *ManageSettingsUseCase) ChangeLanguage(ctx context.Context, lang entity.Language) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("language", string(lang)).Msg("changing language")

	if !lang.Valid() {
		return fmt.Errorf("change language to %q: %w", lang, entity.ErrUnsupportedLanguage)
	}
	if uc.Language() == lang {
		return nil
	}

	if err := uc.configRepo.Save(ctx, entity.LanguagePatch(lang)); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}

	uc.mu.Lock()
	previous := uc.current.Language
	uc.current.Language = lang
	listeners := make([]LanguageListener, 0, len(uc.listeners))
	for id := 0; id < uc.nextID; id++ {
		if fn, ok := uc.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	uc.mu.Unlock()

	log.Info().
		Str("from", string(previous)).
		Str("to", string(lang)).
		Msg("language changed")

	for _, fn := range listeners {
		fn(lang)
	}
	return nil
}

// SaveGeometry persists the window size without touching the language.
func (uc *ManageSettingsUseCase) SaveGeometry(ctx context.Context, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	if err := uc.configRepo.Save(ctx, entity.GeometryPatch(width, height)); err != nil {
		return fmt.Errorf("failed to save window size: %w", err)
	}

	uc.mu.Lock()
	uc.current.Width = width
	uc.current.Height = height
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Int("width", width).
		Int("height", height).
		Msg("window size saved")
	return nil
}
