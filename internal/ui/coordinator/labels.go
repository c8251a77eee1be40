package coordinator

import (
	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/domain/entity"
)

// Labels is every localized string the shell shows.
type Labels struct {
	Language entity.Language

	Back           string
	Forward        string
	Home           string
	NewTab         string
	Settings       string
	History        string
	Voice          string
	VoiceListening string
	SearchHint     string
	SearchButton   string
	Loading        string

	// Dialog strings.
	LanguageTitle string
	OpenSource    string
	Reopen        string
	HistoryEmpty  string
}

// ResolveLabels looks every label up in lang.
func ResolveLabels(loc port.Localizer, lang entity.Language) Labels {
	get := func(key entity.MessageKey) string {
		return loc.Lookup(lang, key)
	}
	return Labels{
		Language:       lang,
		Back:           get(entity.MsgBack),
		Forward:        get(entity.MsgForward),
		Home:           get(entity.MsgHome),
		NewTab:         get(entity.MsgNewTab),
		Settings:       get(entity.MsgSettings),
		History:        get(entity.MsgHistory),
		Voice:          get(entity.MsgVoice),
		VoiceListening: get(entity.MsgVoiceListening),
		SearchHint:     get(entity.MsgSearchHint),
		SearchButton:   get(entity.MsgSearchButton),
		Loading:        get(entity.MsgLoading),
		LanguageTitle:  get(entity.MsgLanguage),
		OpenSource:     get(entity.MsgOpenSource),
		Reopen:         get(entity.MsgReopen),
		HistoryEmpty:   get(entity.MsgHistoryEmpty),
	}
}
