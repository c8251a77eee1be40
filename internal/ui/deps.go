// Package ui provides the GTK4 presentation layer of qb.
package ui

import (
	"context"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/infrastructure/config"
)

// Dependencies holds everything the UI needs. It is built once at startup.
type Dependencies struct {
	Ctx           context.Context
	Config        *config.Config
	ConfigManager *config.Manager
	// InitialURL is opened in the first tab; empty means the home page.
	InitialURL string
	// EngineDataDir holds WebKit cookies.
	EngineDataDir string

	// Factory overrides the WebKit-backed factory. Optional.
	Factory   port.WebViewFactory
	Localizer port.Localizer

	TabsUC     *usecase.ManageTabsUseCase
	SearchUC   *usecase.SubmitSearchUseCase
	SettingsUC *usecase.ManageSettingsUseCase
	HistoryUC  *usecase.BrowseHistoryUseCase
	// VoiceUC is nil when voice search is disabled.
	VoiceUC *usecase.RecognizeVoiceUseCase
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	switch {
	case d.Ctx == nil:
		return ErrMissingDependency("Ctx")
	case d.Config == nil:
		return ErrMissingDependency("Config")
	case d.Localizer == nil:
		return ErrMissingDependency("Localizer")
	case d.TabsUC == nil:
		return ErrMissingDependency("TabsUC")
	case d.SearchUC == nil:
		return ErrMissingDependency("SearchUC")
	case d.SettingsUC == nil:
		return ErrMissingDependency("SettingsUC")
	case d.HistoryUC == nil:
		return ErrMissingDependency("HistoryUC")
	case d.Factory == nil && d.EngineDataDir == "":
		return ErrMissingDependency("EngineDataDir")
	}
	return nil
}

// DependencyError reports a missing dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates an error for a missing dependency.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
