package entity

// MessageKey identifies a localized UI string.
type MessageKey string

const (
	MsgBack           MessageKey = "bk"
	MsgForward        MessageKey = "fw"
	MsgSearchHint     MessageKey = "gstr"
	MsgSearchButton   MessageKey = "gsearch"
	MsgHome           MessageKey = "home"
	MsgNewTab         MessageKey = "ntab"
	MsgSettings       MessageKey = "settings"
	MsgHistory        MessageKey = "history"
	MsgVoice          MessageKey = "voice"
	MsgLanguage       MessageKey = "language"
	MsgOpenSource     MessageKey = "opensrc"
	MsgLoading        MessageKey = "loading"
	MsgReopen         MessageKey = "reopen"
	MsgHistoryEmpty   MessageKey = "history_empty"
	MsgVoiceListening MessageKey = "voice_listening"
)

// MessageNotFound is returned for keys missing from every table.
const MessageNotFound = "не найден"

// AllMessageKeys lists every key the UI resolves.
func AllMessageKeys() []MessageKey {
	return []MessageKey{
		MsgBack, MsgForward, MsgSearchHint, MsgSearchButton, MsgHome,
		MsgNewTab, MsgSettings, MsgHistory, MsgVoice, MsgLanguage,
		MsgOpenSource, MsgLoading, MsgReopen, MsgHistoryEmpty, MsgVoiceListening,
	}
}
