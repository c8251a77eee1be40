// Package webkit adapts WebKitGTK 6 web views to the application ports.
package webkit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/logging"
)

// lastWebViewID numbers web views in creation order, starting at 1.
var lastWebViewID atomic.Uint64

func nextWebViewID() port.WebViewID {
	return port.WebViewID(lastWebViewID.Add(1))
}

// WebView wraps webkit.WebView with cached navigation state.
// All methods except the getters must be called on the GTK main thread.
type WebView struct {
	id    port.WebViewID
	inner *webkit.WebView

	destroyed atomic.Bool

	mu        sync.RWMutex
	uri       string
	title     string
	canGoBack bool
	canGoFwd  bool
	callbacks *port.WebViewCallbacks

	signals []coreglib.SignalHandle
	logger  zerolog.Logger
}

var _ port.WebView = (*WebView)(nil)

func newWebView(inner *webkit.WebView, logger zerolog.Logger) *WebView {
	wv := &WebView{
		inner:   inner,
		signals: make([]coreglib.SignalHandle, 0, 4),
	}
	wv.id = nextWebViewID()
	wv.logger = logger.With().
		Str("component", "webview").
		Uint64("webview_id", uint64(wv.id)).
		Logger()

	wv.connectSignals()
	wv.logger.Debug().Msg("webview created")
	return wv
}

func (wv *WebView) connectSignals() {
	wv.signals = append(wv.signals, wv.inner.ConnectLoadChanged(func(event webkit.LoadEvent) {
		wv.syncState()
		if cb := wv.currentCallbacks(); cb != nil && cb.OnLoadChanged != nil {
			cb.OnLoadChanged(mapLoadEvent(event))
		}
	}))

	wv.signals = append(wv.signals, wv.inner.Connect("notify::title", func() {
		title := wv.inner.Title()
		if !wv.swapTitle(title) {
			return
		}
		if cb := wv.currentCallbacks(); cb != nil && cb.OnTitleChanged != nil {
			cb.OnTitleChanged(title)
		}
	}))

	wv.signals = append(wv.signals, wv.inner.Connect("notify::uri", func() {
		uri := wv.inner.URI()
		if !wv.swapURI(uri) {
			return
		}
		if cb := wv.currentCallbacks(); cb != nil && cb.OnURIChanged != nil {
			cb.OnURIChanged(uri)
		}
	}))

	wv.signals = append(wv.signals, wv.inner.ConnectClose(func() {
		wv.logger.Debug().Msg("page requested close")
		if cb := wv.currentCallbacks(); cb != nil && cb.OnClose != nil {
			cb.OnClose()
		}
	}))
}

// syncState refreshes the navigation flags after a load transition.
func (wv *WebView) syncState() {
	wv.mu.Lock()
	wv.canGoBack = wv.inner.CanGoBack()
	wv.canGoFwd = wv.inner.CanGoForward()
	wv.mu.Unlock()
}

func (wv *WebView) swapTitle(title string) bool {
	wv.mu.Lock()
	defer wv.mu.Unlock()
	if wv.title == title {
		return false
	}
	wv.title = title
	return true
}

func (wv *WebView) swapURI(uri string) bool {
	wv.mu.Lock()
	defer wv.mu.Unlock()
	if wv.uri == uri {
		return false
	}
	wv.uri = uri
	return true
}

func (wv *WebView) currentCallbacks() *port.WebViewCallbacks {
	if wv.destroyed.Load() {
		return nil
	}
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.callbacks
}

// ID returns the process-unique web view number.
func (wv *WebView) ID() port.WebViewID {
	return wv.id
}

// LoadURI navigates to uri.
func (wv *WebView) LoadURI(ctx context.Context, uri string) error {
	if wv.destroyed.Load() {
		return fmt.Errorf("webview %d is destroyed", wv.id)
	}
	wv.inner.LoadURI(uri)
	logging.FromContext(ctx).Debug().
		Uint64("webview_id", uint64(wv.id)).
		Str("uri", uri).
		Msg("load uri")
	return nil
}

// Reload reloads the current page.
func (wv *WebView) Reload(_ context.Context) error {
	if wv.destroyed.Load() {
		return fmt.Errorf("webview %d is destroyed", wv.id)
	}
	wv.inner.Reload()
	return nil
}

// GoBack navigates back in history.
func (wv *WebView) GoBack(_ context.Context) error {
	if wv.destroyed.Load() {
		return fmt.Errorf("webview %d is destroyed", wv.id)
	}
	if !wv.inner.CanGoBack() {
		return fmt.Errorf("cannot go back")
	}
	wv.inner.GoBack()
	return nil
}

// GoForward navigates forward in history.
func (wv *WebView) GoForward(_ context.Context) error {
	if wv.destroyed.Load() {
		return fmt.Errorf("webview %d is destroyed", wv.id)
	}
	if !wv.inner.CanGoForward() {
		return fmt.Errorf("cannot go forward")
	}
	wv.inner.GoForward()
	return nil
}

func (wv *WebView) URI() string {
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.uri
}

func (wv *WebView) Title() string {
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.title
}

func (wv *WebView) CanGoBack() bool {
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.canGoBack
}

func (wv *WebView) CanGoForward() bool {
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.canGoFwd
}

// SetCallbacks replaces the event handlers. Nil clears them.
func (wv *WebView) SetCallbacks(callbacks *port.WebViewCallbacks) {
	wv.mu.Lock()
	wv.callbacks = callbacks
	wv.mu.Unlock()
}

// Widget returns the GTK widget to embed in a container.
func (wv *WebView) Widget() gtk.Widgetter {
	return wv.inner
}

func (wv *WebView) IsDestroyed() bool {
	return wv.destroyed.Load()
}

// Destroy stops loading and detaches all signal handlers.
// The widget itself is released once its parent drops it.
func (wv *WebView) Destroy() {
	if wv.destroyed.Swap(true) {
		return
	}
	wv.inner.StopLoading()
	for _, h := range wv.signals {
		wv.inner.HandlerDisconnect(h)
	}

	wv.mu.Lock()
	wv.signals = nil
	wv.callbacks = nil
	wv.mu.Unlock()

	wv.logger.Debug().Msg("webview destroyed")
}

func mapLoadEvent(event webkit.LoadEvent) port.LoadEvent {
	switch event {
	case webkit.LoadStarted:
		return port.LoadStarted
	case webkit.LoadRedirected:
		return port.LoadRedirected
	case webkit.LoadCommitted:
		return port.LoadCommitted
	default:
		return port.LoadFinished
	}
}
