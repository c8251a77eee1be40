// Package component provides the GTK widgets of the shell.
package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/qualzed/qb/internal/domain/entity"
)

const maxTabTitleChars = 20

// TabButton is one entry of the tab strip: a title button and a close button.
type TabButton struct {
	box      *gtk.Box
	button   *gtk.Button
	label    *gtk.Label
	closeBtn *gtk.Button
	tabID    entity.TabID
	isActive bool
}

// NewTabButton creates a button for tabID showing title.
func NewTabButton(tabID entity.TabID, title string, onClick, onClose func(entity.TabID)) *TabButton {
	tb := &TabButton{tabID: tabID}

	tb.label = gtk.NewLabel(title)
	tb.label.SetEllipsize(pango.EllipsizeMiddle)
	tb.label.SetMaxWidthChars(maxTabTitleChars)
	tb.label.AddCSSClass("tab-title")

	// Keep focus in the page when switching tabs.
	tb.button = gtk.NewButton()
	tb.button.SetFocusOnClick(false)
	tb.button.SetCanFocus(false)
	tb.button.AddCSSClass("tab-button")
	tb.button.SetChild(tb.label)
	tb.button.ConnectClicked(func() {
		if onClick != nil {
			onClick(tabID)
		}
	})

	tb.closeBtn = gtk.NewButtonFromIconName("window-close-symbolic")
	tb.closeBtn.SetCanFocus(false)
	tb.closeBtn.AddCSSClass("flat")
	tb.closeBtn.AddCSSClass("tab-close")
	tb.closeBtn.ConnectClicked(func() {
		if onClose != nil {
			onClose(tabID)
		}
	})

	tb.box = gtk.NewBox(gtk.OrientationHorizontal, 0)
	tb.box.AddCSSClass("linked")
	tb.box.Append(tb.button)
	tb.box.Append(tb.closeBtn)

	return tb
}

// Widget returns the widget to place in the tab strip.
func (tb *TabButton) Widget() gtk.Widgetter {
	return tb.box
}

// TabID returns the tab this button represents.
func (tb *TabButton) TabID() entity.TabID {
	return tb.tabID
}

// SetTitle updates the label.
func (tb *TabButton) SetTitle(title string) {
	tb.label.SetText(title)
	tb.button.SetTooltipText(title)
}

// Title returns the label text.
func (tb *TabButton) Title() string {
	return tb.label.Text()
}

// SetActive toggles active styling.
func (tb *TabButton) SetActive(active bool) {
	if tb.isActive == active {
		return
	}
	tb.isActive = active
	if active {
		tb.button.AddCSSClass("tab-button-active")
	} else {
		tb.button.RemoveCSSClass("tab-button-active")
	}
}

func (tb *TabButton) IsActive() bool {
	return tb.isActive
}
