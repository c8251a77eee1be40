package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/qualzed/qb/internal/bootstrap"
	"github.com/qualzed/qb/internal/cli/cmd"
	"github.com/qualzed/qb/internal/domain/build"
	"github.com/qualzed/qb/internal/logging"
	"github.com/qualzed/qb/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// `qb` alone and `qb browse [url]` open the window; everything else is
	// handled by cobra.
	if len(os.Args) == 1 || os.Args[1] == "browse" {
		var initialURL string
		if len(os.Args) > 2 {
			initialURL = os.Args[2]
		}
		os.Args = os.Args[:1]
		os.Exit(runGUI(initialURL))
	}

	cmd.SetBuildInfo(build.NewInfo(version, commit, buildDate))
	cmd.Execute()
}

func runGUI(initialURL string) int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()

	mgr, cfg, loadErr := bootstrap.LoadConfig()
	timer.Mark("config")

	ctx := bootstrap.NewContext(context.Background(), cfg)
	log := logging.FromContext(ctx)
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("using default settings")
	}
	log.Debug().Str("version", version).Msg("starting qb")
	timer.Mark("logger")

	stack, err := bootstrap.BuildStack(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize stores")
		return 1
	}
	timer.Mark("stack")

	app, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: mgr,
		InitialURL:    initialURL,
		EngineDataDir: stack.EngineDataDir,
		Localizer:     stack.Localizer,
		TabsUC:        stack.TabsUC,
		SearchUC:      stack.SearchUC,
		SettingsUC:    stack.SettingsUC,
		HistoryUC:     stack.HistoryUC,
		VoiceUC:       stack.VoiceUC,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	timer.Mark("ui_deps")
	timer.LogDebug(ctx)

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

// setupSignalHandler quits the GTK application on SIGINT/SIGTERM so the
// window geometry is still saved.
func setupSignalHandler(ctx context.Context, app *ui.App) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logging.FromContext(ctx).Info().Str("signal", sig.String()).Msg("received signal, shutting down")
		app.Quit()
	}()
}
