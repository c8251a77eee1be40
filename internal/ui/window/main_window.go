// Package window provides the main browser window.
package window

import (
	"context"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/logging"
	"github.com/qualzed/qb/internal/ui/component"
	"github.com/qualzed/qb/internal/ui/coordinator"
	"github.com/qualzed/qb/internal/ui/input"
)

const (
	appTitle      = "qb"
	maxTitleRunes = 255
)

// Actions are the handlers the window invokes on user input.
type Actions struct {
	Back      func()
	Forward   func()
	Home      func()
	NewTab    func()
	Search    func(query string)
	Voice     func()
	History   func()
	Settings  func()
	SwitchTab func(id entity.TabID)
	CloseTab  func(id entity.TabID)
	// Shortcut handles actions without a toolbar button. Returns false when
	// the key should reach the page.
	Shortcut func(action input.Action) bool
	// SwitchIndex handles Alt+digit.
	SwitchIndex func(index int)
	// CloseRequest runs before the window closes with its current size.
	CloseRequest func(width, height int)
}

// widgetProvider is implemented by web views that can be embedded.
type widgetProvider interface {
	Widget() gtk.Widgetter
}

// MainWindow is the shell window: toolbar, tab strip and page stack.
// It implements coordinator.View.
type MainWindow struct {
	window *gtk.ApplicationWindow

	back     *gtk.Button
	forward  *gtk.Button
	home     *gtk.Button
	search   *gtk.Entry
	submit   *gtk.Button
	voice    *gtk.Button
	history  *gtk.Button
	settings *gtk.Button
	spinner  *gtk.Spinner

	tabBar *component.TabBar
	pages  *gtk.Stack
	views  map[entity.TabID]gtk.Widgetter

	labels    coordinator.Labels
	voiceBusy bool
	actions   Actions
	logger    zerolog.Logger
}

var _ coordinator.View = (*MainWindow)(nil)

// New creates the main window with the given initial size.
func New(ctx context.Context, app *gtk.Application, width, height int) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		views:  make(map[entity.TabID]gtk.Widgetter),
		logger: log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(appTitle)
	mw.window.SetDefaultSize(width, height)

	toolbar := mw.buildToolbar()

	mw.tabBar = component.NewTabBar()
	mw.tabBar.SetOnSwitch(func(id entity.TabID) { mw.call(mw.actions.SwitchTab, id) })
	mw.tabBar.SetOnClose(func(id entity.TabID) { mw.call(mw.actions.CloseTab, id) })
	mw.tabBar.SetOnCreate(func() { mw.run(mw.actions.NewTab) })

	mw.pages = gtk.NewStack()
	if mw.pages == nil {
		return nil, ErrWidgetCreationFailed("pages")
	}
	mw.pages.SetHExpand(true)
	mw.pages.SetVExpand(true)

	root := gtk.NewBox(gtk.OrientationVertical, 0)
	root.Append(toolbar)
	root.Append(mw.tabBar.Widget())
	root.Append(mw.pages)
	mw.window.SetChild(root)

	mw.installKeyController()

	mw.window.ConnectCloseRequest(func() bool {
		if mw.actions.CloseRequest != nil {
			w, h := mw.window.DefaultSize()
			mw.actions.CloseRequest(w, h)
		}
		return false
	})

	mw.logger.Debug().Int("width", width).Int("height", height).Msg("main window created")
	return mw, nil
}

func (mw *MainWindow) buildToolbar() *gtk.Box {
	bar := gtk.NewBox(gtk.OrientationHorizontal, 4)
	bar.SetMarginTop(4)
	bar.SetMarginBottom(4)
	bar.SetMarginStart(4)
	bar.SetMarginEnd(4)
	bar.AddCSSClass("toolbar")

	mw.back = toolButton(func() { mw.run(mw.actions.Back) })
	mw.forward = toolButton(func() { mw.run(mw.actions.Forward) })
	mw.home = toolButton(func() { mw.run(mw.actions.Home) })

	mw.search = gtk.NewEntry()
	mw.search.SetHExpand(true)
	mw.search.ConnectActivate(mw.submitSearch)

	mw.submit = toolButton(mw.submitSearch)
	mw.submit.AddCSSClass("suggested-action")
	mw.voice = toolButton(func() { mw.run(mw.actions.Voice) })
	mw.history = toolButton(func() { mw.run(mw.actions.History) })
	mw.settings = toolButton(func() { mw.run(mw.actions.Settings) })

	mw.spinner = gtk.NewSpinner()
	mw.spinner.SetVisible(false)

	for _, w := range []gtk.Widgetter{
		mw.back, mw.forward, mw.home, mw.search, mw.submit,
		mw.voice, mw.spinner, mw.history, mw.settings,
	} {
		bar.Append(w)
	}
	return bar
}

func toolButton(onClick func()) *gtk.Button {
	b := gtk.NewButton()
	b.SetCanFocus(false)
	b.ConnectClicked(onClick)
	return b
}

func (mw *MainWindow) submitSearch() {
	if mw.actions.Search != nil {
		mw.actions.Search(mw.search.Text())
	}
}

func (mw *MainWindow) installKeyController() {
	keys := gtk.NewEventControllerKey()
	// Capture phase so shortcuts win over the page.
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, keycode uint, state gdk.ModifierType) bool {
		if idx, ok := input.TabIndexForKeycode(keycode, input.Modifier(state)); ok && mw.actions.SwitchIndex != nil {
			mw.actions.SwitchIndex(idx)
			return true
		}
		action := input.Lookup(keyval, state)
		if action == input.ActionNone {
			return false
		}
		if action == input.ActionFocusSearch {
			mw.FocusSearch()
			return true
		}
		if mw.actions.Shortcut != nil {
			return mw.actions.Shortcut(action)
		}
		return false
	})
	mw.window.AddController(keys)
}

func (mw *MainWindow) run(fn func()) {
	if fn != nil {
		fn()
	}
}

func (mw *MainWindow) call(fn func(entity.TabID), id entity.TabID) {
	if fn != nil {
		fn(id)
	}
}

// Bind sets the handlers for user input.
func (mw *MainWindow) Bind(actions Actions) {
	mw.actions = actions
}

// SetVoiceAvailable hides the voice button when no recognizer is configured.
func (mw *MainWindow) SetVoiceAvailable(available bool) {
	mw.voice.SetVisible(available)
}

// Window returns the GTK window for use as a dialog parent.
func (mw *MainWindow) Window() *gtk.Window {
	return &mw.window.Window
}

// Present shows the window.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// Close closes the window, which triggers CloseRequest.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// FocusSearch focuses the search entry and selects its text.
func (mw *MainWindow) FocusSearch() {
	mw.search.GrabFocus()
	mw.search.SelectRegion(0, -1)
}

// ApplyLabels relabels every control.
func (mw *MainWindow) ApplyLabels(l coordinator.Labels) {
	mw.labels = l

	mw.back.SetLabel(l.Back)
	mw.forward.SetLabel(l.Forward)
	mw.home.SetLabel(l.Home)
	mw.submit.SetLabel(l.SearchButton)
	mw.voice.SetLabel(voiceLabel(l, mw.voiceBusy))
	mw.history.SetLabel(l.History)
	mw.settings.SetLabel(l.Settings)
	mw.search.SetPlaceholderText(l.SearchHint)
	mw.spinner.SetTooltipText(l.Loading)
	mw.tabBar.SetNewTabTooltip(l.NewTab)
}

// SetWindowTitle shows title followed by the application name.
func (mw *MainWindow) SetWindowTitle(title string) {
	mw.window.SetTitle(formatTitle(title))
}

func formatTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return appTitle
	}
	if r := []rune(title); len(r) > maxTitleRunes {
		title = string(r[:maxTitleRunes-1]) + "…"
	}
	return title + " - " + appTitle
}

func (mw *MainWindow) SetNavigation(canGoBack, canGoForward bool) {
	mw.back.SetSensitive(canGoBack)
	mw.forward.SetSensitive(canGoForward)
}

func (mw *MainWindow) SetLoading(loading bool) {
	mw.spinner.SetVisible(loading)
	if loading {
		mw.spinner.Start()
	} else {
		mw.spinner.Stop()
	}
}

// SetVoiceBusy shows the listening label while a capture runs.
func (mw *MainWindow) SetVoiceBusy(busy bool) {
	mw.voiceBusy = busy
	mw.voice.SetSensitive(!busy)
	mw.voice.SetLabel(voiceLabel(mw.labels, busy))
}

func voiceLabel(l coordinator.Labels, busy bool) string {
	if busy {
		return l.VoiceListening
	}
	return l.Voice
}

// AddTab adds a page for wv and a tab button titled title.
func (mw *MainWindow) AddTab(id entity.TabID, title string, wv port.WebView) error {
	provider, ok := wv.(widgetProvider)
	if !ok {
		return ErrWebViewNotEmbeddable
	}
	widget := provider.Widget()
	mw.pages.AddNamed(widget, string(id))
	mw.views[id] = widget
	mw.tabBar.AddTab(id, title)
	return nil
}

// RemoveTab drops the page and tab button of id.
func (mw *MainWindow) RemoveTab(id entity.TabID) {
	if widget, ok := mw.views[id]; ok {
		mw.pages.Remove(widget)
		delete(mw.views, id)
	}
	mw.tabBar.RemoveTab(id)
}

// ShowTab brings the page of id to the front.
func (mw *MainWindow) ShowTab(id entity.TabID) {
	if _, ok := mw.views[id]; ok {
		mw.pages.SetVisibleChildName(string(id))
	}
	mw.tabBar.SetActive(id)
}

func (mw *MainWindow) SetTabTitle(id entity.TabID, title string) {
	mw.tabBar.UpdateTitle(id, title)
}
