package dialog

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/ui/coordinator"
)

// SettingsHandlers receives the choices made in the settings dialog.
type SettingsHandlers struct {
	OnLanguage   func(lang entity.Language)
	OnOpenSource func()
}

// ShowSettings opens the settings dialog: one button per language and a
// link to the project sources. Choosing anything closes the dialog.
func ShowSettings(parent *gtk.Window, labels coordinator.Labels, h SettingsHandlers) *gtk.Window {
	win := newModal(parent, labels.Settings, dialogWidth, -1)
	content := newContentBox()

	heading := gtk.NewLabel(labels.LanguageTitle)
	heading.SetXAlign(0)
	heading.AddCSSClass("heading")
	content.Append(heading)

	languages := gtk.NewBox(gtk.OrientationHorizontal, 6)
	languages.AddCSSClass("linked")
	for _, lang := range entity.SupportedLanguages() {
		btn := gtk.NewButtonWithLabel(lang.DisplayName())
		btn.SetHExpand(true)
		if lang == labels.Language {
			btn.AddCSSClass("suggested-action")
		}
		btn.ConnectClicked(func() {
			win.Close()
			if h.OnLanguage != nil {
				h.OnLanguage(lang)
			}
		})
		languages.Append(btn)
	}
	content.Append(languages)

	content.Append(gtk.NewSeparator(gtk.OrientationHorizontal))

	source := gtk.NewButtonWithLabel(labels.OpenSource)
	source.ConnectClicked(func() {
		win.Close()
		if h.OnOpenSource != nil {
			h.OnOpenSource()
		}
	})
	content.Append(source)

	win.SetChild(content)
	win.Present()
	return win
}
