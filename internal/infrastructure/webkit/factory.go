package webkit

import (
	"context"
	"fmt"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/logging"
)

// Settings holds per-view engine preferences.
type Settings struct {
	UserAgent          string
	EnableDeveloperKit bool
}

// WebViewFactory creates WebViews bound to a shared WebKitContext.
type WebViewFactory struct {
	wkCtx    *WebKitContext
	settings Settings
}

var _ port.WebViewFactory = (*WebViewFactory)(nil)

// NewWebViewFactory returns a factory for views sharing wkCtx.
func NewWebViewFactory(wkCtx *WebKitContext, settings Settings) *WebViewFactory {
	return &WebViewFactory{wkCtx: wkCtx, settings: settings}
}

// Create builds a new WebView. Must be called on the GTK main thread.
func (f *WebViewFactory) Create(ctx context.Context) (port.WebView, error) {
	wv, err := f.CreateWebView(ctx)
	if err != nil {
		return nil, err
	}
	return wv, nil
}

// CreateWebView is Create with the concrete type, for callers that embed the widget.
func (f *WebViewFactory) CreateWebView(ctx context.Context) (*WebView, error) {
	if f.wkCtx == nil || !f.wkCtx.IsInitialized() {
		return nil, fmt.Errorf("webkit context not initialized")
	}

	inner := webkit.NewWebView()
	if inner == nil {
		return nil, fmt.Errorf("failed to create webkit webview")
	}
	f.apply(inner)

	inner.SetHExpand(true)
	inner.SetVExpand(true)

	return newWebView(inner, logging.FromContext(ctx)), nil
}

func (f *WebViewFactory) apply(inner *webkit.WebView) {
	s := inner.Settings()
	if s == nil {
		return
	}
	s.SetEnableJavascript(true)
	s.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	s.SetEnableDeveloperExtras(f.settings.EnableDeveloperKit)
	if f.settings.UserAgent != "" {
		s.SetUserAgent(f.settings.UserAgent)
	}
}
