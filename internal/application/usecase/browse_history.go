package usecase

import (
	"context"
	"fmt"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/domain/repository"
	"github.com/qualzed/qb/internal/logging"
)

// BrowseHistoryUseCase reads the history log for display.
type BrowseHistoryUseCase struct {
	historyRepo repository.HistoryRepository
}

// NewBrowseHistoryUseCase creates a new history browsing use case.
func NewBrowseHistoryUseCase(historyRepo repository.HistoryRepository) *BrowseHistoryUseCase {
	return &BrowseHistoryUseCase{historyRepo: historyRepo}
}

// List returns every history entry, newest first.
func (uc *BrowseHistoryUseCase) List(ctx context.Context) ([]entity.HistoryEntry, error) {
	urls, err := uc.historyRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("entries", len(urls)).Msg("history listed")
	return entity.NewestFirst(urls), nil
}
