package entity

import (
	"errors"
	"strings"
)

// Language is a supported UI language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"

	// DefaultLanguage is used when nothing valid is configured.
	DefaultLanguage = LanguageRussian
)

// ErrUnsupportedLanguage is returned when a language code is not one of the
// supported languages.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// SupportedLanguages lists the languages in the order they are offered to the user.
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageRussian}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageRussian
}

// ParseLanguage maps a code to a Language, falling back to DefaultLanguage.
func ParseLanguage(code string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	if l.Valid() {
		return l
	}
	return DefaultLanguage
}

// SpeechTag returns the BCP-47 tag used when transcribing speech in l.
func (l Language) SpeechTag() string {
	switch l {
	case LanguageEnglish:
		return "en-US"
	default:
		return "ru-RU"
	}
}

// DisplayName is the language's own name for itself.
func (l Language) DisplayName() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageRussian:
		return "Русский"
	default:
		return string(l)
	}
}
