package webkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/rs/zerolog"

	"github.com/qualzed/qb/internal/logging"
)

const cookieFileName = "cookies.db"

// WebKitContext configures the process-wide WebKit state shared by every tab.
// It must be created on the GTK main thread before the first WebView.
type WebKitContext struct {
	webContext     *webkit.WebContext
	networkSession *webkit.NetworkSession

	dataDir string

	logger      zerolog.Logger
	mu          sync.RWMutex
	initialized bool
}

// NewWebKitContext selects browser caching and persists cookies under dataDir.
func NewWebKitContext(ctx context.Context, dataDir string) (*WebKitContext, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-context").Logger()

	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create webkit data dir: %w", err)
	}

	c := &WebKitContext{dataDir: dataDir, logger: log}

	c.webContext = webkit.WebContextGetDefault()
	if c.webContext == nil {
		return nil, fmt.Errorf("failed to get default web context")
	}
	c.webContext.SetCacheModel(webkit.CacheModelWebBrowser)

	c.networkSession = webkit.NetworkSessionGetDefault()
	if c.networkSession == nil {
		return nil, fmt.Errorf("failed to get default network session")
	}
	if cookies := c.networkSession.CookieManager(); cookies != nil {
		cookiePath := filepath.Join(dataDir, cookieFileName)
		cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
		log.Debug().Str("cookie_path", cookiePath).Msg("cookie storage configured")
	}

	c.initialized = true
	log.Info().Str("data_dir", dataDir).Msg("webkit context initialized")
	return c, nil
}

// DataDir returns the directory holding persistent engine data.
func (c *WebKitContext) DataDir() string {
	return c.dataDir
}

// IsInitialized reports whether the context can back new WebViews.
func (c *WebKitContext) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Close marks the context unusable. WebKit releases its own resources.
func (c *WebKitContext) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = false
	c.logger.Debug().Msg("webkit context closed")
	return nil
}
