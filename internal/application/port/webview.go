// Package port defines application-layer interfaces for external capabilities.
// Ports keep the application layer independent of WebKit, GTK and the
// speech backend.
package port

import "context"

// WebViewID uniquely identifies a WebView instance.
type WebViewID uint64

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadRedirected indicates a redirect occurred.
	LoadRedirected
	// LoadCommitted indicates content is being received.
	LoadCommitted
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
)

func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadRedirected:
		return "redirected"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// WebViewCallbacks defines handlers for WebView events.
// Implementations invoke them on the main thread.
type WebViewCallbacks struct {
	OnLoadChanged  func(event LoadEvent)
	OnTitleChanged func(title string)
	OnURIChanged   func(uri string)
	// OnClose is called when the page asks to close its view.
	OnClose func()
}

// WebView is the rendering engine collaborator for one tab.
type WebView interface {
	ID() WebViewID

	LoadURI(ctx context.Context, uri string) error
	Reload(ctx context.Context) error

	// GoBack returns an error when there is nothing to go back to.
	GoBack(ctx context.Context) error
	// GoForward returns an error when there is nothing to go forward to.
	GoForward(ctx context.Context) error

	URI() string
	Title() string
	CanGoBack() bool
	CanGoForward() bool

	// SetCallbacks registers event handlers. Pass nil to clear them.
	SetCallbacks(callbacks *WebViewCallbacks)

	IsDestroyed() bool
	Destroy()
}

// WebViewFactory creates new WebView instances.
type WebViewFactory interface {
	Create(ctx context.Context) (WebView, error)
}
