package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qualzed/qb/internal/application/port"
	portmocks "github.com/qualzed/qb/internal/application/port/mocks"
	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/domain/entity"
	repomocks "github.com/qualzed/qb/internal/domain/repository/mocks"
	"github.com/qualzed/qb/internal/infrastructure/config"
	"github.com/qualzed/qb/internal/logging"
	"github.com/qualzed/qb/internal/ui/mainloop"
)

const testHome = "https://home.example"

type fakeLocalizer struct{}

func (fakeLocalizer) Lookup(lang entity.Language, key entity.MessageKey) string {
	return string(lang) + ":" + string(key)
}

type fakeWebView struct {
	id        port.WebViewID
	loaded    []string
	uri       string
	title     string
	canBack   bool
	canFwd    bool
	backCalls int
	callbacks *port.WebViewCallbacks
	destroyed bool
}

func (w *fakeWebView) ID() port.WebViewID { return w.id }
func (w *fakeWebView) LoadURI(_ context.Context, uri string) error {
	w.loaded = append(w.loaded, uri)
	w.uri = uri
	return nil
}
func (w *fakeWebView) Reload(context.Context) error { return nil }
func (w *fakeWebView) GoBack(context.Context) error {
	w.backCalls++
	return nil
}
func (w *fakeWebView) GoForward(context.Context) error           { return nil }
func (w *fakeWebView) URI() string                               { return w.uri }
func (w *fakeWebView) Title() string                             { return w.title }
func (w *fakeWebView) CanGoBack() bool                           { return w.canBack }
func (w *fakeWebView) CanGoForward() bool                        { return w.canFwd }
func (w *fakeWebView) SetCallbacks(cb *port.WebViewCallbacks)    { w.callbacks = cb }
func (w *fakeWebView) IsDestroyed() bool                         { return w.destroyed }
func (w *fakeWebView) Destroy()                                  { w.destroyed = true }
func (w *fakeWebView) lastLoaded() string {
	if len(w.loaded) == 0 {
		return ""
	}
	return w.loaded[len(w.loaded)-1]
}

type fakeFactory struct {
	created []*fakeWebView
	err     error
}

func (f *fakeFactory) Create(context.Context) (port.WebView, error) {
	if f.err != nil {
		return nil, f.err
	}
	wv := &fakeWebView{id: port.WebViewID(len(f.created) + 1)}
	f.created = append(f.created, wv)
	return wv, nil
}

type fakeView struct {
	labels      Labels
	windowTitle string
	canBack     bool
	canFwd      bool
	loading     bool
	voiceBusy   bool
	order       []entity.TabID
	shown       entity.TabID
	titles      map[entity.TabID]string
	addErr      error
}

func newFakeView() *fakeView {
	return &fakeView{titles: make(map[entity.TabID]string)}
}

func (v *fakeView) ApplyLabels(l Labels)            { v.labels = l }
func (v *fakeView) SetWindowTitle(title string)     { v.windowTitle = title }
func (v *fakeView) SetNavigation(back, fwd bool)    { v.canBack, v.canFwd = back, fwd }
func (v *fakeView) SetLoading(loading bool)         { v.loading = loading }
func (v *fakeView) SetVoiceBusy(busy bool)          { v.voiceBusy = busy }
func (v *fakeView) ShowTab(id entity.TabID)         { v.shown = id }
func (v *fakeView) SetTabTitle(id entity.TabID, title string) {
	if _, ok := v.titles[id]; ok {
		v.titles[id] = title
	}
}
func (v *fakeView) AddTab(id entity.TabID, title string, _ port.WebView) error {
	if v.addErr != nil {
		return v.addErr
	}
	v.order = append(v.order, id)
	v.titles[id] = title
	return nil
}
func (v *fakeView) RemoveTab(id entity.TabID) {
	delete(v.titles, id)
	for i, t := range v.order {
		if t == id {
			v.order = append(v.order[:i], v.order[i+1:]...)
			return
		}
	}
}

type shellFixture struct {
	shell    *ShellCoordinator
	view     *fakeView
	factory  *fakeFactory
	history  *repomocks.MockHistoryRepository
	cfgRepo  *repomocks.MockConfigRepository
	quitRuns int
}

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: logging.FormatConsole})
	return logging.WithContext(context.Background(), logger)
}

func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tab-%d", n)
	}
}

func newShellFixture(t *testing.T, voice *usecase.RecognizeVoiceUseCase, post mainloop.Poster) *shellFixture {
	t.Helper()
	f := &shellFixture{
		view:    newFakeView(),
		factory: &fakeFactory{},
		history: repomocks.NewMockHistoryRepository(t),
		cfgRepo: repomocks.NewMockConfigRepository(t),
	}
	if post == nil {
		post = mainloop.Immediate
	}
	f.shell = NewShellCoordinator(testContext(), ShellConfig{
		TabsUC:     usecase.NewManageTabsUseCase(sequentialIDs(), testHome),
		SearchUC:   usecase.NewSubmitSearchUseCase(f.history, "https://search.example/?q=%s"),
		SettingsUC: usecase.NewManageSettingsUseCase(f.cfgRepo),
		HistoryUC:  usecase.NewBrowseHistoryUseCase(f.history),
		VoiceUC:    voice,
		Factory:    f.factory,
		Localizer:  fakeLocalizer{},
		Post:       post,
	}, f.view)
	f.shell.SetOnQuit(func() { f.quitRuns++ })
	return f
}

func (f *shellFixture) start(t *testing.T) {
	t.Helper()
	require.NoError(t, f.shell.Start(testContext(), ""))
}

func TestShell_StartOpensHomeTabWithPlaceholder(t *testing.T) {
	f := newShellFixture(t, nil, nil)
	f.start(t)

	require.Len(t, f.factory.created, 1)
	assert.Equal(t, []string{testHome}, f.factory.created[0].loaded)

	active := f.shell.Tabs().ActiveTab()
	require.NotNil(t, active)
	assert.Equal(t, entity.TabStateLoading, active.State)
	assert.Equal(t, "ru:ntab", f.view.titles[active.ID])
	assert.Equal(t, "ru:ntab", f.view.windowTitle)
	assert.Equal(t, "ru:bk", f.view.labels.Back)
	assert.Equal(t, active.ID, f.view.shown)
	assert.Equal(t, ShellStateRunning, f.shell.State())
}

func TestShell_StartFailsWhenWebViewCannotBeCreated(t *testing.T) {
	f := newShellFixture(t, nil, nil)
	f.factory.err = errors.New("no display")

	err := f.shell.Start(testContext(), "")
	require.Error(t, err)
	assert.Equal(t, 0, f.shell.Tabs().Count())
}

func TestShell_CloseAllButOneLeavesSingleActiveTab(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	for i := 0; i < 3; i++ {
		_, err := f.shell.OpenTab(ctx, "example.com")
		require.NoError(t, err)
	}
	require.Equal(t, 4, f.shell.Tabs().Count())

	for f.shell.Tabs().Count() > 1 {
		require.NoError(t, f.shell.CloseTab(ctx, f.shell.Tabs().Tabs[0].ID))
	}

	remaining := f.shell.Tabs().Tabs[0]
	assert.Equal(t, remaining.ID, f.shell.Tabs().ActiveTabID)
	assert.Equal(t, remaining.ID, f.view.shown)
	assert.Equal(t, []entity.TabID{remaining.ID}, f.view.order)
	assert.Equal(t, ShellStateRunning, f.shell.State())
	assert.Equal(t, 0, f.quitRuns)

	destroyed := 0
	for _, wv := range f.factory.created {
		if wv.destroyed {
			destroyed++
		}
	}
	assert.Equal(t, 3, destroyed)
}

func TestShell_ClosingLastTabTerminates(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)

	require.NoError(t, f.shell.CloseActiveTab(ctx))

	assert.Equal(t, ShellStateTerminated, f.shell.State())
	assert.Equal(t, 1, f.quitRuns)
	assert.True(t, f.factory.created[0].destroyed)

	_, err := f.shell.OpenTab(ctx, "")
	assert.ErrorIs(t, err, ErrShellTerminated)
	assert.ErrorIs(t, f.shell.Search(ctx, "cats"), ErrShellTerminated)
	assert.Equal(t, 1, f.quitRuns)
}

func TestShell_OpenTabRollsBackWhenViewRejectsIt(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	first := f.shell.Tabs().ActiveTabID

	f.view.addErr = errors.New("no room")
	_, err := f.shell.OpenTab(ctx, "")
	require.Error(t, err)

	assert.Equal(t, 1, f.shell.Tabs().Count())
	assert.Equal(t, first, f.shell.Tabs().ActiveTabID)
	require.Len(t, f.factory.created, 2)
	assert.True(t, f.factory.created[1].destroyed)
	assert.Same(t, f.factory.created[0], f.shell.ActiveWebView())
	assert.Equal(t, first, f.view.shown)
}

func TestShell_CloseUnknownTab(t *testing.T) {
	f := newShellFixture(t, nil, nil)
	f.start(t)

	err := f.shell.CloseTab(testContext(), "missing")
	assert.ErrorIs(t, err, usecase.ErrTabNotFound)
	assert.Equal(t, 1, f.shell.Tabs().Count())
}

func TestShell_SearchBlankDoesNothing(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	wv := f.factory.created[0]

	require.NoError(t, f.shell.Search(ctx, ""))
	require.NoError(t, f.shell.Search(ctx, "   "))

	assert.Equal(t, []string{testHome}, wv.loaded)
	f.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestShell_SearchNavigatesAndRecordsExactURL(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	wv := f.factory.created[0]

	var recorded string
	f.history.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u string) { recorded = u }).
		Return(nil).Once()

	require.NoError(t, f.shell.Search(ctx, "cats"))

	assert.Equal(t, "https://search.example/?q=cats", wv.lastLoaded())
	assert.Equal(t, wv.lastLoaded(), recorded)
}

func TestShell_SearchTargetsActiveTab(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	first := f.shell.Tabs().Tabs[0].ID
	_, err := f.shell.OpenTab(ctx, "")
	require.NoError(t, err)
	require.NoError(t, f.shell.SwitchTab(ctx, first))

	f.history.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, f.shell.Search(ctx, "go"))

	assert.Equal(t, "https://search.example/?q=go", f.factory.created[0].lastLoaded())
	assert.Equal(t, testHome, f.factory.created[1].lastLoaded())
}

func TestShell_LanguageChangeKeepsPageTitles(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	_, err := f.shell.OpenTab(ctx, "")
	require.NoError(t, err)

	titled := f.shell.Tabs().Tabs[0]
	placeholder := f.shell.Tabs().Tabs[1]
	f.factory.created[0].callbacks.OnTitleChanged("Example Domain")
	require.Equal(t, "Example Domain", f.view.titles[titled.ID])

	f.cfgRepo.EXPECT().Save(mock.Anything, entity.LanguagePatch(entity.LanguageEnglish)).Return(nil).Once()
	require.NoError(t, f.shell.ChangeLanguage(ctx, entity.LanguageEnglish))

	assert.Equal(t, "Example Domain", f.view.titles[titled.ID])
	assert.Equal(t, "en:ntab", f.view.titles[placeholder.ID])
	assert.Equal(t, "en:gstr", f.view.labels.SearchHint)
	assert.Equal(t, "en:ntab", f.view.windowTitle)
	assert.Equal(t, entity.LanguageEnglish, f.shell.Labels().Language)
}

func TestShell_UntitledPageFallsBackToPlaceholder(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	wv := f.factory.created[0]
	tab := f.shell.Tabs().ActiveTab()

	wv.callbacks.OnTitleChanged("Old Page")
	require.Equal(t, "Old Page", f.view.titles[tab.ID])

	wv.uri = "https://untitled.example/"
	wv.callbacks.OnLoadChanged(port.LoadStarted)
	assert.Equal(t, "ru:ntab", f.view.titles[tab.ID])
	assert.Equal(t, "ru:ntab", f.view.windowTitle)

	wv.callbacks.OnTitleChanged("")
	wv.callbacks.OnLoadChanged(port.LoadFinished)
	assert.Equal(t, "ru:ntab", f.view.titles[tab.ID])

	f.cfgRepo.EXPECT().Save(mock.Anything, entity.LanguagePatch(entity.LanguageEnglish)).Return(nil).Once()
	require.NoError(t, f.shell.ChangeLanguage(ctx, entity.LanguageEnglish))
	assert.Equal(t, "en:ntab", f.view.titles[tab.ID])
	assert.Equal(t, "en:ntab", f.view.windowTitle)
}

func TestShell_LanguageChangeRejectsUnsupported(t *testing.T) {
	f := newShellFixture(t, nil, nil)
	f.start(t)

	err := f.shell.ChangeLanguage(testContext(), entity.Language("de"))
	assert.ErrorIs(t, err, entity.ErrUnsupportedLanguage)
	assert.Equal(t, "ru:bk", f.view.labels.Back)
}

func TestShell_EventsForClosedTabAreDropped(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	_, err := f.shell.OpenTab(ctx, "")
	require.NoError(t, err)

	closed := f.shell.Tabs().Tabs[1]
	cb := f.factory.created[1].callbacks
	require.NoError(t, f.shell.CloseTab(ctx, closed.ID))

	assert.NotPanics(t, func() {
		cb.OnTitleChanged("Late")
		cb.OnLoadChanged(port.LoadFinished)
	})
	_, present := f.view.titles[closed.ID]
	assert.False(t, present)
	assert.Nil(t, f.shell.Tabs().Find(closed.ID))
}

func TestShell_LoadFinishedUpdatesStateAndNavigation(t *testing.T) {
	f := newShellFixture(t, nil, nil)
	f.start(t)
	wv := f.factory.created[0]
	tab := f.shell.Tabs().ActiveTab()

	wv.canBack = true
	wv.title = "Loaded Page"
	wv.callbacks.OnLoadChanged(port.LoadFinished)

	assert.Equal(t, entity.TabStateLoaded, tab.State)
	assert.Equal(t, "Loaded Page", f.view.titles[tab.ID])
	assert.Equal(t, "Loaded Page", f.view.windowTitle)
	assert.True(t, f.view.canBack)
	assert.False(t, f.view.canFwd)
	assert.False(t, f.view.loading)
}

func TestShell_BackOnlyWhenAvailable(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	wv := f.factory.created[0]

	require.NoError(t, f.shell.Back(ctx))
	assert.Equal(t, 0, wv.backCalls)

	wv.canBack = true
	require.NoError(t, f.shell.Back(ctx))
	assert.Equal(t, 1, wv.backCalls)
}

func TestShell_HomeLoadsHomePage(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	require.NoError(t, f.shell.Start(ctx, "example.com"))
	wv := f.factory.created[0]
	require.Equal(t, "https://example.com", wv.lastLoaded())

	wv.canBack = true
	require.NoError(t, f.shell.Home(ctx))
	assert.Equal(t, testHome, wv.lastLoaded())
	assert.True(t, f.view.canBack)
}

func TestShell_OpenSourceOpensRepositoryTab(t *testing.T) {
	f := newShellFixture(t, nil, nil)
	f.start(t)

	require.NoError(t, f.shell.OpenSource(testContext()))

	require.Len(t, f.factory.created, 2)
	assert.Equal(t, SourceURL, f.factory.created[1].lastLoaded())
	assert.Equal(t, f.shell.Tabs().Tabs[1].ID, f.shell.Tabs().ActiveTabID)
}

func TestShell_HistoryEntriesAndReopen(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)
	f.history.EXPECT().ReadAll(mock.Anything).
		Return([]string{"https://a.example", "https://b.example"}, nil).Once()

	entries := f.shell.HistoryEntries(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "https://b.example", entries[0].URL)

	require.NoError(t, f.shell.ReopenHistory(ctx, entries[0].URL))
	assert.Equal(t, "https://b.example", f.factory.created[1].lastLoaded())
}

func TestShell_ApplySettingsChangesSearchAndHome(t *testing.T) {
	ctx := testContext()
	f := newShellFixture(t, nil, nil)
	f.start(t)

	cfg := config.DefaultConfig()
	cfg.Search.Template = "https://other.example/find?q=%s"
	cfg.Search.HomeURL = "https://start.example"
	f.shell.ApplySettings(ctx, cfg)

	f.history.EXPECT().Append(mock.Anything, "https://other.example/find?q=x").Return(nil).Once()
	require.NoError(t, f.shell.Search(ctx, "x"))

	require.NoError(t, f.shell.Home(ctx))
	assert.Equal(t, "https://start.example", f.factory.created[0].lastLoaded())
}

func channelPoster(ch chan func()) mainloop.Poster {
	return func(fn func()) { ch <- fn }
}

func TestShell_VoiceSearchesTranscript(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	recognizer := portmocks.NewMockSpeechRecognizer(ctrl)
	recognizer.EXPECT().Recognize(gomock.Any(), "ru-RU").Return(" кошки ", nil)

	posted := make(chan func(), 1)
	f := newShellFixture(t, usecase.NewRecognizeVoiceUseCase(recognizer, time.Second), channelPoster(posted))
	f.start(t)

	var recorded string
	f.history.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u string) { recorded = u }).
		Return(nil).Once()

	f.shell.Voice(ctx)
	assert.True(t, f.view.voiceBusy)

	select {
	case fn := <-posted:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("voice result was never posted")
	}

	assert.False(t, f.view.voiceBusy)
	wv := f.factory.created[0]
	assert.True(t, strings.HasPrefix(wv.lastLoaded(), "https://search.example/?q="))
	assert.Equal(t, wv.lastLoaded(), recorded)
}

func TestShell_VoiceFailureDoesNotSearch(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	recognizer := portmocks.NewMockSpeechRecognizer(ctrl)
	recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return("", errors.New("no microphone"))

	posted := make(chan func(), 1)
	f := newShellFixture(t, usecase.NewRecognizeVoiceUseCase(recognizer, time.Second), channelPoster(posted))
	f.start(t)

	f.shell.Voice(ctx)
	select {
	case fn := <-posted:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("voice result was never posted")
	}

	assert.False(t, f.view.voiceBusy)
	assert.Equal(t, []string{testHome}, f.factory.created[0].loaded)
	f.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestShell_VoiceDisabledIsNoop(t *testing.T) {
	f := newShellFixture(t, nil, nil)
	f.start(t)

	assert.False(t, f.shell.VoiceEnabled())
	f.shell.Voice(testContext())
	assert.False(t, f.view.voiceBusy)
}
