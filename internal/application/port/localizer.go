package port

import "github.com/qualzed/qb/internal/domain/entity"

// Localizer resolves UI strings. Lookup is total: unknown languages fall
// back to the default language and unknown keys to entity.MessageNotFound.
type Localizer interface {
	Lookup(lang entity.Language, key entity.MessageKey) string
}
