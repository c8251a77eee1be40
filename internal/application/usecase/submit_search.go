package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qualzed/qb/internal/application/port"
	"github.com/qualzed/qb/internal/domain/repository"
	"github.com/qualzed/qb/internal/domain/url"
	"github.com/qualzed/qb/internal/logging"
)

// ErrNoActiveTab is returned when an action needs a tab and none is active.
var ErrNoActiveTab = errors.New("no active tab")

// SearchSource tells where a query came from.
type SearchSource int

const (
	SearchSourceBar SearchSource = iota
	SearchSourceVoice
)

func (s SearchSource) String() string {
	if s == SearchSourceVoice {
		return "voice"
	}
	return "search_bar"
}

// SubmitSearchUseCase turns a query into a search-engine URL, loads it in a
// web view and records it in the history log.
type SubmitSearchUseCase struct {
	historyRepo repository.HistoryRepository
	template    string
}

// NewSubmitSearchUseCase creates a search use case for the given URL
// template (see url.BuildSearchURL).
func NewSubmitSearchUseCase(historyRepo repository.HistoryRepository, template string) *SubmitSearchUseCase {
	if template == "" {
		template = url.DefaultSearchTemplate
	}
	return &SubmitSearchUseCase{
		historyRepo: historyRepo,
		template:    template,
	}
}

// SetTemplate replaces the search template. Empty values are ignored.
func (uc *SubmitSearchUseCase) SetTemplate(template string) {
	if template != "" {
		uc.template = template
	}
}

// SubmitSearchInput contains parameters for a search.
type SubmitSearchInput struct {
	Query  string
	Source SearchSource
	Target port.WebView
}

// SubmitSearchOutput contains the result of a search.
type SubmitSearchOutput struct {
	// URL is empty when the query was blank and nothing happened.
	URL string
}

// Execute navigates Target to the search URL for Query and appends that URL
// to history. A blank query does nothing.
func (uc *SubmitSearchUseCase) Execute(ctx context.Context, input SubmitSearchInput) (*SubmitSearchOutput, error) {
	log := logging.FromContext(ctx)
	query := strings.TrimSpace(input.Query)

	log.Debug().
		Str("source", input.Source.String()).
		Int("query_len", len(query)).
		Msg("submitting search")

	if query == "" {
		return &SubmitSearchOutput{}, nil
	}
	if input.Target == nil || input.Target.IsDestroyed() {
		return nil, ErrNoActiveTab
	}

	target := url.BuildSearchURL(uc.template, query)
	if err := input.Target.LoadURI(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to load search url: %w", err)
	}

	if err := uc.historyRepo.Append(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}

	log.Info().
		Str("source", input.Source.String()).
		Str("url", target).
		Msg("search submitted")

	return &SubmitSearchOutput{URL: target}, nil
}
