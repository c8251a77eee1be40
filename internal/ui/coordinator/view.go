package coordinator

import (
	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/domain/entity"
)

// View is the window the shell drives. Every method runs on the main thread.
type View interface {
	ApplyLabels(labels Labels)
	SetWindowTitle(title string)
	SetNavigation(canGoBack, canGoForward bool)
	SetLoading(loading bool)
	SetVoiceBusy(busy bool)

	// AddTab embeds wv in a new tab page and tab button.
	AddTab(id entity.TabID, title string, wv port.WebView) error
	RemoveTab(id entity.TabID)
	ShowTab(id entity.TabID)
	SetTabTitle(id entity.TabID, title string)
}
