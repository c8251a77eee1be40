package ui

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/infrastructure/config"
	"github.com/qualzed/qb/internal/infrastructure/webkit"
	"github.com/qualzed/qb/internal/logging"
	"github.com/qualzed/qb/internal/ui/coordinator"
	"github.com/qualzed/qb/internal/ui/dialog"
	"github.com/qualzed/qb/internal/ui/input"
	"github.com/qualzed/qb/internal/ui/mainloop"
	"github.com/qualzed/qb/internal/ui/theme"
	"github.com/qualzed/qb/internal/ui/window"
)

// AppID is the GTK application identifier.
const AppID = "io.github.qualzed.qb"

// App wraps the GTK application and owns the shell.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow
	shell      *coordinator.ShellCoordinator
	wkCtx      *webkit.WebKitContext
	theme      *theme.Manager

	cancel context.CancelCauseFunc
}

// New creates an App from validated dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	ctx, a.cancel = context.WithCancelCause(ctx)

	// Non-unique: `qb browse <url>` always gets its own window.
	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	// GTK must not parse our CLI flags.
	return a.gtkApp.Run(args[:min(len(args), 1)])
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.mainWindow != nil {
		a.mainWindow.Present()
		return
	}

	if err := a.initEngine(ctx); err != nil {
		log.Error().Err(err).Msg("failed to initialize web engine")
		a.gtkApp.Quit()
		return
	}

	a.theme = theme.NewManager(ctx, a.deps.Config)
	a.theme.ApplyToDisplay(ctx, gdk.DisplayGetDefault())

	width, height := a.deps.SettingsUC.Config().Geometry()
	mw, err := window.New(ctx, a.gtkApp, width, height)
	if err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		a.gtkApp.Quit()
		return
	}
	a.mainWindow = mw

	a.shell = coordinator.NewShellCoordinator(ctx, coordinator.ShellConfig{
		TabsUC:     a.deps.TabsUC,
		SearchUC:   a.deps.SearchUC,
		SettingsUC: a.deps.SettingsUC,
		HistoryUC:  a.deps.HistoryUC,
		VoiceUC:    a.deps.VoiceUC,
		Factory:    a.deps.Factory,
		Localizer:  a.deps.Localizer,
		Post:       mainloop.IdlePoster,
	}, mw)
	a.shell.SetOnQuit(mw.Close)

	mw.SetVoiceAvailable(a.shell.VoiceEnabled())
	mw.Bind(a.actions(ctx))

	if err := a.shell.Start(ctx, a.deps.InitialURL); err != nil {
		log.Error().Err(err).Msg("failed to start shell")
		a.gtkApp.Quit()
		return
	}

	a.initConfigWatcher(ctx)
	mw.Present()
}

// initEngine sets up WebKit unless a factory was injected.
func (a *App) initEngine(ctx context.Context) error {
	if a.deps.Factory != nil {
		return nil
	}
	wkCtx, err := webkit.NewWebKitContext(ctx, a.deps.EngineDataDir)
	if err != nil {
		return err
	}
	a.wkCtx = wkCtx
	a.deps.Factory = webkit.NewWebViewFactory(wkCtx, webkit.Settings{})
	return nil
}

func (a *App) actions(ctx context.Context) window.Actions {
	warn := func(what string, err error) {
		if err != nil && !errors.Is(err, coordinator.ErrShellTerminated) {
			logging.FromContext(ctx).Warn().Err(err).Msg(what)
		}
	}

	return window.Actions{
		Back:     func() { warn("back failed", a.shell.Back(ctx)) },
		Forward:  func() { warn("forward failed", a.shell.Forward(ctx)) },
		Home:     func() { warn("home failed", a.shell.Home(ctx)) },
		NewTab:   func() { warn("new tab failed", a.shell.NewTab(ctx)) },
		Search:   func(q string) { warn("search failed", a.shell.Search(ctx, q)) },
		Voice:    func() { a.shell.Voice(ctx) },
		History:  func() { a.showHistory(ctx) },
		Settings: func() { a.showSettings(ctx) },
		SwitchTab: func(id entity.TabID) {
			warn("switch tab failed", a.shell.SwitchTab(ctx, id))
		},
		CloseTab: func(id entity.TabID) {
			warn("close tab failed", a.shell.CloseTab(ctx, id))
		},
		SwitchIndex: func(i int) {
			if i < a.shell.Tabs().Count() {
				warn("switch tab failed", a.shell.SwitchTabByIndex(ctx, i))
			}
		},
		Shortcut: func(action input.Action) bool {
			return a.handleShortcut(ctx, action)
		},
		CloseRequest: func(w, h int) {
			a.shell.SaveGeometry(ctx, w, h)
		},
	}
}

func (a *App) handleShortcut(ctx context.Context, action input.Action) bool {
	log := logging.FromContext(ctx)
	var err error

	switch action {
	case input.ActionNewTab:
		err = a.shell.NewTab(ctx)
	case input.ActionCloseTab:
		err = a.shell.CloseActiveTab(ctx)
	case input.ActionNextTab, input.ActionPrevTab:
		err = a.cycleTab(ctx, action == input.ActionNextTab)
	case input.ActionBack:
		err = a.shell.Back(ctx)
	case input.ActionForward:
		err = a.shell.Forward(ctx)
	case input.ActionReload:
		err = a.shell.Reload(ctx)
	case input.ActionHome:
		err = a.shell.Home(ctx)
	case input.ActionHistory:
		a.showHistory(ctx)
	case input.ActionVoice:
		a.shell.Voice(ctx)
	default:
		return false
	}

	if err != nil && !errors.Is(err, coordinator.ErrShellTerminated) {
		log.Warn().Err(err).Str("action", string(action)).Msg("shortcut failed")
	}
	return true
}

func (a *App) cycleTab(ctx context.Context, forward bool) error {
	tabs := a.shell.Tabs()
	n := tabs.Count()
	if n < 2 {
		return nil
	}
	idx := tabs.IndexOf(tabs.ActiveTabID)
	if forward {
		idx = (idx + 1) % n
	} else {
		idx = (idx - 1 + n) % n
	}
	return a.shell.SwitchTabByIndex(ctx, idx)
}

func (a *App) showSettings(ctx context.Context) {
	log := logging.FromContext(ctx)
	dialog.ShowSettings(a.mainWindow.Window(), a.shell.Labels(), dialog.SettingsHandlers{
		OnLanguage: func(lang entity.Language) {
			if err := a.shell.ChangeLanguage(ctx, lang); err != nil {
				log.Warn().Err(err).Str("language", string(lang)).Msg("language change failed")
			}
		},
		OnOpenSource: func() {
			if err := a.shell.OpenSource(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to open source link")
			}
		},
	})
}

func (a *App) showHistory(ctx context.Context) {
	entries := a.shell.HistoryEntries(ctx)
	dialog.ShowHistory(a.mainWindow.Window(), a.shell.Labels(), entries, func(url string) {
		if err := a.shell.ReopenHistory(ctx, url); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("url", url).Msg("failed to reopen history entry")
		}
	})
}

// initConfigWatcher hot-reloads search and appearance settings.
func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	m := a.deps.ConfigManager
	if m == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}
	if err := m.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}
	m.OnConfigChange(func(cfg *config.Config) {
		a.shell.ApplySettings(ctx, cfg)
		mainloop.IdlePoster(func() {
			a.theme.UpdateFromConfig(ctx, cfg, gdk.DisplayGetDefault())
		})
	})
	log.Debug().Msg("config watcher initialized")
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	a.cancel(errors.New("application shutdown"))
	if a.wkCtx != nil {
		if err := a.wkCtx.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close webkit context")
		}
	}
	log.Info().Msg("application shutdown complete")
}

// Quit closes the window from any goroutine.
func (a *App) Quit() {
	mainloop.IdlePoster(func() {
		if a.mainWindow != nil {
			a.mainWindow.Close()
			return
		}
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}
