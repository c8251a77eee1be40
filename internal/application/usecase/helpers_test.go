package usecase_test

import (
	"context"
	"errors"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/logging"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: logging.FormatConsole})
	return logging.WithContext(context.Background(), logger)
}

type stubWebView struct {
	loaded    []string
	loadErr   error
	destroyed bool
}

func (s *stubWebView) ID() port.WebViewID { return 1 }

func (s *stubWebView) LoadURI(_ context.Context, uri string) error {
	if s.loadErr != nil {
		return s.loadErr
	}
	s.loaded = append(s.loaded, uri)
	return nil
}

func (s *stubWebView) Reload(context.Context) error    { return nil }
func (s *stubWebView) GoBack(context.Context) error    { return errors.New("no history") }
func (s *stubWebView) GoForward(context.Context) error { return errors.New("no history") }
func (s *stubWebView) URI() string                     { return "" }
func (s *stubWebView) Title() string                   { return "" }
func (s *stubWebView) CanGoBack() bool                 { return false }
func (s *stubWebView) CanGoForward() bool              { return false }
func (s *stubWebView) SetCallbacks(*port.WebViewCallbacks) {}
func (s *stubWebView) IsDestroyed() bool               { return s.destroyed }
func (s *stubWebView) Destroy()                        { s.destroyed = true }
