package coordinator

import (
	"context"
	"fmt"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/logging"
)

// OpenTab opens rawURL, or the home page when blank, in a new active tab.
func (c *ShellCoordinator) OpenTab(ctx context.Context, rawURL string) (*entity.Tab, error) {
	if err := c.running(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	wv, err := c.factory.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create webview: %w", err)
	}

	previous := c.tabs.ActiveTabID
	tab, err := c.tabsUC.Open(ctx, c.tabs, rawURL)
	if err != nil {
		wv.Destroy()
		return nil, err
	}
	c.webViews[tab.ID] = wv
	wv.SetCallbacks(c.callbacksFor(ctx, tab.ID, wv))

	if err := c.view.AddTab(tab.ID, c.labels.NewTab, wv); err != nil {
		c.discardTab(tab.ID, previous)
		return nil, fmt.Errorf("add tab to window: %w", err)
	}
	c.view.ShowTab(tab.ID)
	log.Debug().
		Str("tab_id", string(tab.ID)).
		Uint64("webview_id", uint64(wv.ID())).
		Msg("tab opened")

	if err := wv.LoadURI(ctx, tab.URL); err != nil {
		log.Warn().Err(err).Str("url", tab.URL).Msg("initial load failed")
	}
	c.tabsUC.MarkLoading(ctx, c.tabs, tab.ID, tab.URL)

	c.refreshWindowTitle()
	c.refreshNavigation()
	return tab, nil
}

// discardTab undoes a half-opened tab and gives focus back to previous.
func (c *ShellCoordinator) discardTab(id, previous entity.TabID) {
	if wv, ok := c.webViews[id]; ok {
		wv.Destroy()
		delete(c.webViews, id)
	}
	c.tabs.Remove(id)
	if c.tabs.Find(previous) != nil {
		c.tabs.ActiveTabID = previous
	}
}

// NewTab opens the home page in a new tab.
func (c *ShellCoordinator) NewTab(ctx context.Context) error {
	_, err := c.OpenTab(ctx, "")
	return err
}

// CloseTab closes a tab. Closing the last one terminates the shell.
func (c *ShellCoordinator) CloseTab(ctx context.Context, id entity.TabID) error {
	if err := c.running(); err != nil {
		return err
	}

	wasLast, err := c.tabsUC.Close(ctx, c.tabs, id)
	if err != nil {
		return err
	}

	if wv, ok := c.webViews[id]; ok {
		wv.Destroy()
		delete(c.webViews, id)
	}
	c.view.RemoveTab(id)

	if wasLast {
		c.terminate(ctx)
		return nil
	}

	if active := c.tabs.ActiveTab(); active != nil {
		c.view.ShowTab(active.ID)
	}
	c.refreshWindowTitle()
	c.refreshNavigation()
	return nil
}

// CloseActiveTab closes the active tab.
func (c *ShellCoordinator) CloseActiveTab(ctx context.Context) error {
	tab := c.tabs.ActiveTab()
	if tab == nil {
		return nil
	}
	return c.CloseTab(ctx, tab.ID)
}

// SwitchTab activates a tab.
func (c *ShellCoordinator) SwitchTab(ctx context.Context, id entity.TabID) error {
	if err := c.running(); err != nil {
		return err
	}
	if err := c.tabsUC.Switch(ctx, c.tabs, id); err != nil {
		return err
	}
	c.view.ShowTab(id)
	c.refreshWindowTitle()
	c.refreshNavigation()
	return nil
}

// SwitchTabByIndex activates the tab at index.
func (c *ShellCoordinator) SwitchTabByIndex(ctx context.Context, index int) error {
	tab := c.tabs.At(index)
	if tab == nil {
		return c.tabsUC.SwitchByIndex(ctx, c.tabs, index)
	}
	return c.SwitchTab(ctx, tab.ID)
}

// callbacksFor routes web view events to the tab by identity. Events for a
// tab that has since closed are dropped by the use case.
func (c *ShellCoordinator) callbacksFor(ctx context.Context, id entity.TabID, wv port.WebView) *port.WebViewCallbacks {
	ctx = logging.WithTabID(ctx, string(id))
	logger := logging.FromContext(ctx).With().Uint64("webview_id", uint64(wv.ID())).Logger()
	ctx = logging.WithContext(ctx, logger)

	return &port.WebViewCallbacks{
		OnLoadChanged: func(event port.LoadEvent) {
			c.onLoadChanged(ctx, id, wv, event)
		},
		OnTitleChanged: func(title string) {
			c.onTitleChanged(ctx, id, title)
		},
		OnURIChanged: func(string) {
			if c.isActive(id) {
				c.refreshNavigation()
			}
		},
		OnClose: func() {
			if err := c.CloseTab(ctx, id); err != nil {
				logging.FromContext(ctx).Debug().Err(err).Msg("page close ignored")
			}
		},
	}
}

func (c *ShellCoordinator) onLoadChanged(ctx context.Context, id entity.TabID, wv port.WebView, event port.LoadEvent) {
	switch event {
	case port.LoadStarted:
		if !c.tabsUC.MarkLoading(ctx, c.tabs, id, wv.URI()) {
			return
		}
		c.showTabTitle(id)
	case port.LoadFinished:
		if !c.tabsUC.MarkLoaded(ctx, c.tabs, id) {
			return
		}
		// The title may have settled without a separate notification.
		c.onTitleChanged(ctx, id, wv.Title())
	default:
		if c.tabs.Find(id) == nil {
			return
		}
	}

	if c.isActive(id) {
		c.refreshNavigation()
	}
}

func (c *ShellCoordinator) onTitleChanged(ctx context.Context, id entity.TabID, title string) {
	if !c.tabsUC.UpdateTitle(ctx, c.tabs, id, title) {
		return
	}
	c.showTabTitle(id)
}

// showTabTitle pushes the page title, or the placeholder, of id to the view.
func (c *ShellCoordinator) showTabTitle(id entity.TabID) {
	tab := c.tabs.Find(id)
	if tab == nil {
		return
	}
	c.view.SetTabTitle(id, tab.DisplayTitle(c.labels.NewTab))
	if c.isActive(id) {
		c.refreshWindowTitle()
	}
}

func (c *ShellCoordinator) isActive(id entity.TabID) bool {
	return c.tabs.ActiveTabID == id
}
