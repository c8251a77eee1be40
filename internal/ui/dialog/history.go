package dialog

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/ui/coordinator"
)

const historyHeight = 480

// ShowHistory lists entries as given (newest first). Activating a row or
// its reopen button calls onReopen and closes the dialog.
func ShowHistory(parent *gtk.Window, labels coordinator.Labels, entries []entity.HistoryEntry, onReopen func(url string)) *gtk.Window {
	win := newModal(parent, labels.History, dialogWidth*2, historyHeight)

	if len(entries) == 0 {
		empty := gtk.NewLabel(labels.HistoryEmpty)
		empty.AddCSSClass("dim-label")
		content := newContentBox()
		content.SetVAlign(gtk.AlignCenter)
		content.Append(empty)
		win.SetChild(content)
		win.Present()
		return win
	}

	reopen := func(url string) {
		win.Close()
		if onReopen != nil {
			onReopen(url)
		}
	}

	list := gtk.NewListBox()
	list.SetSelectionMode(gtk.SelectionSingle)
	list.SetActivateOnSingleClick(false)
	for _, e := range entries {
		list.Append(historyRow(e.URL, labels.Reopen, reopen))
	}
	list.ConnectRowActivated(func(row *gtk.ListBoxRow) {
		if i := row.Index(); i >= 0 && i < len(entries) {
			reopen(entries[i].URL)
		}
	})

	scroller := gtk.NewScrolledWindow()
	scroller.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scroller.SetVExpand(true)
	scroller.SetChild(list)

	win.SetChild(scroller)
	win.Present()
	return win
}

func historyRow(url, reopenLabel string, reopen func(string)) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 8)
	row.SetMarginStart(dialogMargin)
	row.SetMarginEnd(dialogMargin)
	row.SetMarginTop(4)
	row.SetMarginBottom(4)

	label := gtk.NewLabel(url)
	label.SetXAlign(0)
	label.SetHExpand(true)
	label.SetEllipsize(pango.EllipsizeEnd)
	label.SetTooltipText(url)
	row.Append(label)

	btn := gtk.NewButtonWithLabel(reopenLabel)
	btn.AddCSSClass("flat")
	btn.ConnectClicked(func() { reopen(url) })
	row.Append(btn)

	return row
}
