package repository

import (
	"context"

	"github.com/qualzed/qb/internal/domain/entity"
)

// ConfigRepository persists the user's language and window size.
type ConfigRepository interface {
	// Load returns the stored config. Missing or unreadable fields take
	// their defaults; content problems are never returned as errors.
	Load(ctx context.Context) (entity.Config, error)

	// Save merges patch into the stored config. Fields the patch leaves
	// nil keep their stored value.
	Save(ctx context.Context, patch entity.ConfigPatch) error
}
