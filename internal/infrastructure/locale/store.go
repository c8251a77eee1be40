// Package locale resolves UI strings from the message tables embedded in
// the binary.
package locale

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/domain/entity"
)

//go:embed locales/*.toml
var messageFiles embed.FS

// Store is an immutable set of message tables, safe for concurrent use.
type Store struct {
	bundle     *i18n.Bundle
	localizers map[entity.Language]*i18n.Localizer
}

// NewStore loads the embedded tables for every supported language.
func NewStore() (*Store, error) {
	bundle := i18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	store := &Store{
		bundle:     bundle,
		localizers: make(map[entity.Language]*i18n.Localizer),
	}

	for _, lang := range entity.SupportedLanguages() {
		name := fmt.Sprintf("locales/active.%s.toml", lang)
		data, err := messageFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		store.localizers[lang] = i18n.NewLocalizer(bundle, string(lang))
	}

	return store, nil
}

// MustNewStore is NewStore for callers that cannot continue without text.
func MustNewStore() *Store {
	store, err := NewStore()
	if err != nil {
		panic(err)
	}
	return store
}

// Lookup returns the text for key in lang. Unsupported languages resolve
// as entity.DefaultLanguage; missing keys yield entity.MessageNotFound.
func (s *Store) Lookup(lang entity.Language, key entity.MessageKey) string {
	if !lang.Valid() {
		lang = entity.DefaultLanguage
	}
	localizer, ok := s.localizers[lang]
	if !ok {
		return entity.MessageNotFound
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: string(key)})
	if err != nil || msg == "" {
		return entity.MessageNotFound
	}
	return msg
}

var _ port.Localizer = (*Store)(nil)
