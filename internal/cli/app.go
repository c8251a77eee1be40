// Package cli holds the dependencies shared by the qb subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/qualzed/qb/internal/bootstrap"
	"github.com/qualzed/qb/internal/cli/styles"
	"github.com/qualzed/qb/internal/infrastructure/config"
	"github.com/qualzed/qb/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	Stack         *bootstrap.Stack

	ctx context.Context
}

// NewApp loads the settings and opens the stores.
func NewApp() (*App, error) {
	mgr, cfg, loadErr := bootstrap.LoadConfig()
	ctx := bootstrap.NewContext(context.Background(), cfg)
	if loadErr != nil {
		logging.FromContext(ctx).Warn().Err(loadErr).Msg("using default settings")
	}

	stack, err := bootstrap.BuildStack(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build stack: %w", err)
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Stack:         stack,
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
