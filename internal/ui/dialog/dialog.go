// Package dialog provides the settings and history windows.
package dialog

import "github.com/diamondburned/gotk4/pkg/gtk/v4"

const (
	dialogWidth  = 420
	dialogMargin = 12
)

// newModal creates a modal window over parent that is dropped on close.
func newModal(parent *gtk.Window, title string, width, height int) *gtk.Window {
	win := gtk.NewWindow()
	win.SetTitle(title)
	win.SetModal(true)
	win.SetDestroyWithParent(true)
	win.SetDefaultSize(width, height)
	if parent != nil {
		win.SetTransientFor(parent)
	}
	return win
}

func newContentBox() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 8)
	box.SetMarginTop(dialogMargin)
	box.SetMarginBottom(dialogMargin)
	box.SetMarginStart(dialogMargin)
	box.SetMarginEnd(dialogMargin)
	return box
}
