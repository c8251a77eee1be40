package coordinator

import (
	"context"
	"errors"

	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/logging"
)

// Back navigates the active tab back when it can.
func (c *ShellCoordinator) Back(ctx context.Context) error {
	if err := c.running(); err != nil {
		return err
	}
	wv := c.ActiveWebView()
	if wv == nil || !wv.CanGoBack() {
		return nil
	}
	if err := wv.GoBack(ctx); err != nil {
		return err
	}
	c.refreshNavigation()
	return nil
}

// Forward navigates the active tab forward when it can.
func (c *ShellCoordinator) Forward(ctx context.Context) error {
	if err := c.running(); err != nil {
		return err
	}
	wv := c.ActiveWebView()
	if wv == nil || !wv.CanGoForward() {
		return nil
	}
	if err := wv.GoForward(ctx); err != nil {
		return err
	}
	c.refreshNavigation()
	return nil
}

// Reload reloads the active tab.
func (c *ShellCoordinator) Reload(ctx context.Context) error {
	if err := c.running(); err != nil {
		return err
	}
	wv := c.ActiveWebView()
	if wv == nil {
		return usecase.ErrNoActiveTab
	}
	return wv.Reload(ctx)
}

// Home navigates the active tab to the home page.
func (c *ShellCoordinator) Home(ctx context.Context) error {
	if err := c.running(); err != nil {
		return err
	}
	wv := c.ActiveWebView()
	if wv == nil {
		return usecase.ErrNoActiveTab
	}
	if err := wv.LoadURI(ctx, c.tabsUC.HomeURL()); err != nil {
		return err
	}
	c.refreshNavigation()
	return nil
}

// Search submits the search bar text. A blank query does nothing.
func (c *ShellCoordinator) Search(ctx context.Context, query string) error {
	if err := c.running(); err != nil {
		return err
	}
	_, err := c.searchUC.Execute(ctx, usecase.SubmitSearchInput{
		Query:  query,
		Source: usecase.SearchSourceBar,
		Target: c.ActiveWebView(),
	})
	return err
}

// Voice records one utterance in the background and searches for it.
// Failures are logged and nothing else happens.
func (c *ShellCoordinator) Voice(ctx context.Context) {
	log := logging.FromContext(ctx)
	if c.running() != nil || c.voiceUC == nil {
		return
	}
	if c.voiceBusy {
		log.Debug().Msg("voice capture already running")
		return
	}

	c.voiceBusy = true
	c.view.SetVoiceBusy(true)
	lang := c.settingsUC.Language()

	go func() {
		text, err := c.voiceUC.Execute(ctx, lang)
		c.post(func() {
			c.finishVoice(ctx, text, err)
		})
	}()
}

func (c *ShellCoordinator) finishVoice(ctx context.Context, text string, err error) {
	log := logging.FromContext(ctx)

	c.voiceBusy = false
	if c.state == ShellStateTerminated {
		return
	}
	c.view.SetVoiceBusy(false)

	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTranscript) {
			log.Info().Msg("voice input produced no text")
		} else {
			log.Warn().Err(err).Msg("voice recognition failed")
		}
		return
	}

	if _, err := c.searchUC.Execute(ctx, usecase.SubmitSearchInput{
		Query:  text,
		Source: usecase.SearchSourceVoice,
		Target: c.ActiveWebView(),
	}); err != nil {
		log.Warn().Err(err).Msg("voice search failed")
	}
}
