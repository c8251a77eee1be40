package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/qualzed/qb/internal/domain/entity"
)

// TabBar is the horizontal tab strip with a trailing new-tab button.
// It is confined to the main thread.
type TabBar struct {
	root    *gtk.Box
	tabs    *gtk.Box
	newTab  *gtk.Button
	buttons map[entity.TabID]*TabButton

	activeTabID entity.TabID

	onSwitch func(entity.TabID)
	onClose  func(entity.TabID)
	onCreate func()
}

// NewTabBar creates an empty tab strip.
func NewTabBar() *TabBar {
	tb := &TabBar{buttons: make(map[entity.TabID]*TabButton)}

	tb.tabs = gtk.NewBox(gtk.OrientationHorizontal, 2)
	tb.tabs.AddCSSClass("tab-bar")

	scroller := gtk.NewScrolledWindow()
	scroller.SetPolicy(gtk.PolicyAutomatic, gtk.PolicyNever)
	scroller.SetHExpand(true)
	scroller.SetChild(tb.tabs)

	tb.newTab = gtk.NewButtonFromIconName("tab-new-symbolic")
	tb.newTab.SetCanFocus(false)
	tb.newTab.ConnectClicked(func() {
		if tb.onCreate != nil {
			tb.onCreate()
		}
	})

	tb.root = gtk.NewBox(gtk.OrientationHorizontal, 4)
	tb.root.SetHExpand(true)
	tb.root.Append(scroller)
	tb.root.Append(tb.newTab)

	return tb
}

// Widget returns the widget for embedding.
func (tb *TabBar) Widget() gtk.Widgetter {
	return tb.root
}

// AddTab appends a button for id. Adding an existing id is a no-op.
func (tb *TabBar) AddTab(id entity.TabID, title string) {
	if _, exists := tb.buttons[id]; exists {
		return
	}
	button := NewTabButton(id, title, tb.handleSwitch, tb.handleClose)
	button.SetTitle(title)
	tb.tabs.Append(button.Widget())
	tb.buttons[id] = button
}

// RemoveTab drops the button for id.
func (tb *TabBar) RemoveTab(id entity.TabID) {
	button, exists := tb.buttons[id]
	if !exists {
		return
	}
	tb.tabs.Remove(button.Widget())
	delete(tb.buttons, id)
	if tb.activeTabID == id {
		tb.activeTabID = ""
	}
}

// SetActive highlights id.
func (tb *TabBar) SetActive(id entity.TabID) {
	if prev, ok := tb.buttons[tb.activeTabID]; ok && tb.activeTabID != id {
		prev.SetActive(false)
	}
	if button, ok := tb.buttons[id]; ok {
		button.SetActive(true)
	}
	tb.activeTabID = id
}

// UpdateTitle relabels the button for id.
func (tb *TabBar) UpdateTitle(id entity.TabID, title string) {
	if button, ok := tb.buttons[id]; ok {
		button.SetTitle(title)
	}
}

// SetNewTabTooltip sets the localized tooltip of the new-tab button.
func (tb *TabBar) SetNewTabTooltip(text string) {
	tb.newTab.SetTooltipText(text)
}

func (tb *TabBar) SetOnSwitch(fn func(entity.TabID)) { tb.onSwitch = fn }
func (tb *TabBar) SetOnClose(fn func(entity.TabID))  { tb.onClose = fn }
func (tb *TabBar) SetOnCreate(fn func())             { tb.onCreate = fn }

// Count returns the number of buttons.
func (tb *TabBar) Count() int {
	return len(tb.buttons)
}

// ActiveTabID returns the highlighted tab.
func (tb *TabBar) ActiveTabID() entity.TabID {
	return tb.activeTabID
}

func (tb *TabBar) handleSwitch(id entity.TabID) {
	if tb.onSwitch != nil {
		tb.onSwitch(id)
	}
}

func (tb *TabBar) handleClose(id entity.TabID) {
	if tb.onClose != nil {
		tb.onClose(id)
	}
}
