// Package coordinator turns user actions into use case calls and keeps the
// window in sync with the tab model.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/domain/build"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/infrastructure/config"
	"github.com/qualzed/qb/internal/logging"
	"github.com/qualzed/qb/internal/ui/mainloop"
)

// SourceURL is the project repository opened by the settings dialog.
const SourceURL = build.RepoURL

// ShellState is the lifecycle of the shell.
type ShellState int

const (
	ShellStateRunning ShellState = iota
	// ShellStateTerminated is entered when the last tab closes. It is final.
	ShellStateTerminated
)

func (s ShellState) String() string {
	switch s {
	case ShellStateRunning:
		return "running"
	case ShellStateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ShellConfig holds the collaborators of a ShellCoordinator.
type ShellConfig struct {
	TabsUC     *usecase.ManageTabsUseCase
	SearchUC   *usecase.SubmitSearchUseCase
	SettingsUC *usecase.ManageSettingsUseCase
	HistoryUC  *usecase.BrowseHistoryUseCase
	// VoiceUC is nil when voice search is disabled.
	VoiceUC *usecase.RecognizeVoiceUseCase

	Factory   port.WebViewFactory
	Localizer port.Localizer
	// Post marshals voice results and settings reloads onto the main loop.
	Post mainloop.Poster
}

// ShellCoordinator owns the tab list and the web view behind each tab.
// It is confined to the main thread.
type ShellCoordinator struct {
	tabsUC     *usecase.ManageTabsUseCase
	searchUC   *usecase.SubmitSearchUseCase
	settingsUC *usecase.ManageSettingsUseCase
	historyUC  *usecase.BrowseHistoryUseCase
	voiceUC    *usecase.RecognizeVoiceUseCase

	factory   port.WebViewFactory
	localizer port.Localizer
	post      mainloop.Poster
	coalescer *mainloop.Coalescer

	view     View
	tabs     *entity.TabList
	webViews map[entity.TabID]port.WebView
	labels   Labels

	state       ShellState
	voiceBusy   bool
	unsubscribe func()
	onQuit      func()
}

// NewShellCoordinator creates a shell bound to view.
func NewShellCoordinator(ctx context.Context, cfg ShellConfig, view View) *ShellCoordinator {
	logging.FromContext(ctx).Debug().Msg("creating shell coordinator")

	post := cfg.Post
	if post == nil {
		post = mainloop.IdlePoster
	}

	return &ShellCoordinator{
		tabsUC:     cfg.TabsUC,
		searchUC:   cfg.SearchUC,
		settingsUC: cfg.SettingsUC,
		historyUC:  cfg.HistoryUC,
		voiceUC:    cfg.VoiceUC,
		factory:    cfg.Factory,
		localizer:  cfg.Localizer,
		post:       post,
		coalescer:  mainloop.NewCoalescer(post),
		view:       view,
		tabs:       entity.NewTabList(),
		webViews:   make(map[entity.TabID]port.WebView),
	}
}

// SetOnQuit sets the callback run once when the shell terminates.
func (c *ShellCoordinator) SetOnQuit(fn func()) {
	c.onQuit = fn
}

// State returns the lifecycle state.
func (c *ShellCoordinator) State() ShellState {
	return c.state
}

// Tabs exposes the tab model for read access.
func (c *ShellCoordinator) Tabs() *entity.TabList {
	return c.tabs
}

// Labels returns the labels for the active language.
func (c *ShellCoordinator) Labels() Labels {
	return c.labels
}

// VoiceEnabled reports whether a recognizer is configured.
func (c *ShellCoordinator) VoiceEnabled() bool {
	return c.voiceUC != nil
}

// Start labels the window in the active language and opens the first tab.
func (c *ShellCoordinator) Start(ctx context.Context, initialURL string) error {
	log := logging.FromContext(ctx)

	c.unsubscribe = c.settingsUC.Subscribe(func(lang entity.Language) {
		c.relabel(ctx, lang)
	})
	c.relabel(ctx, c.settingsUC.Language())

	if _, err := c.OpenTab(ctx, initialURL); err != nil {
		return fmt.Errorf("open first tab: %w", err)
	}

	log.Info().
		Str("language", string(c.settingsUC.Language())).
		Bool("voice", c.VoiceEnabled()).
		Msg("shell started")
	return nil
}

// ActiveWebView returns the web view of the active tab, or nil.
func (c *ShellCoordinator) ActiveWebView() port.WebView {
	tab := c.tabs.ActiveTab()
	if tab == nil {
		return nil
	}
	return c.webViews[tab.ID]
}

// relabel re-resolves every localized string. Tabs showing a real page
// title keep it.
func (c *ShellCoordinator) relabel(ctx context.Context, lang entity.Language) {
	c.labels = ResolveLabels(c.localizer, lang)
	c.view.ApplyLabels(c.labels)

	for _, tab := range c.tabs.Tabs {
		if !tab.HasPageTitle() {
			c.view.SetTabTitle(tab.ID, c.labels.NewTab)
		}
	}
	c.refreshWindowTitle()

	logging.FromContext(ctx).Debug().Str("language", string(lang)).Msg("labels updated")
}

func (c *ShellCoordinator) refreshWindowTitle() {
	tab := c.tabs.ActiveTab()
	if tab == nil {
		c.view.SetWindowTitle(c.labels.NewTab)
		return
	}
	c.view.SetWindowTitle(tab.DisplayTitle(c.labels.NewTab))
}

// refreshNavigation recomputes back/forward availability from the active
// web view.
func (c *ShellCoordinator) refreshNavigation() {
	wv := c.ActiveWebView()
	if wv == nil || wv.IsDestroyed() {
		c.view.SetNavigation(false, false)
		c.view.SetLoading(false)
		return
	}
	c.view.SetNavigation(wv.CanGoBack(), wv.CanGoForward())
	if tab := c.tabs.ActiveTab(); tab != nil {
		c.view.SetLoading(tab.State == entity.TabStateLoading)
	}
}

// ChangeLanguage switches the UI language and persists it.
func (c *ShellCoordinator) ChangeLanguage(ctx context.Context, lang entity.Language) error {
	return c.settingsUC.ChangeLanguage(ctx, lang)
}

// SaveGeometry persists the window size. Called when the window closes.
func (c *ShellCoordinator) SaveGeometry(ctx context.Context, width, height int) {
	if err := c.settingsUC.SaveGeometry(ctx, width, height); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to save window geometry")
	}
}

// HistoryEntries returns visited URLs, newest first.
func (c *ShellCoordinator) HistoryEntries(ctx context.Context) []entity.HistoryEntry {
	entries, err := c.historyUC.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read history")
		return nil
	}
	return entries
}

// ReopenHistory opens a history entry in a new tab.
func (c *ShellCoordinator) ReopenHistory(ctx context.Context, rawURL string) error {
	_, err := c.OpenTab(ctx, rawURL)
	return err
}

// OpenSource opens the project repository in a new tab.
func (c *ShellCoordinator) OpenSource(ctx context.Context) error {
	_, err := c.OpenTab(ctx, SourceURL)
	return err
}

// ApplySettings takes a reloaded settings file. It may be called from any
// goroutine; bursts collapse into one main-loop update.
func (c *ShellCoordinator) ApplySettings(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	template, home := cfg.Search.Template, cfg.Search.HomeURL
	c.coalescer.Post("settings-reload", func() {
		if c.state == ShellStateTerminated {
			return
		}
		c.searchUC.SetTemplate(template)
		c.tabsUC.SetHomeURL(home)
		logging.FromContext(ctx).Info().
			Str("search_template", template).
			Str("home_url", home).
			Msg("settings reloaded")
	})
}

// terminate is the final transition, entered when the last tab closes.
func (c *ShellCoordinator) terminate(ctx context.Context) {
	if c.state == ShellStateTerminated {
		return
	}
	c.state = ShellStateTerminated

	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.coalescer.Destroy()

	logging.FromContext(ctx).Info().Msg("last tab closed, shutting down")

	if c.onQuit != nil {
		c.onQuit()
	}
}

// running guards every user action against a terminated shell.
func (c *ShellCoordinator) running() error {
	if c.state == ShellStateTerminated {
		return ErrShellTerminated
	}
	return nil
}

// ErrShellTerminated is returned by actions attempted after the last tab closed.
var ErrShellTerminated = errors.New("shell terminated")
