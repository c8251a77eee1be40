package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/domain/url"
	"github.com/qualzed/qb/internal/logging"
)

// ErrTabNotFound is returned when an operation names a tab that is not open.
var ErrTabNotFound = errors.New("tab not found")

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase handles tab lifecycle operations.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
	homeURL     string
}

// NewManageTabsUseCase creates a new tab management use case.
// Tabs opened without a URL navigate to homeURL.
func NewManageTabsUseCase(idGenerator IDGenerator, homeURL string) *ManageTabsUseCase {
	if homeURL == "" {
		homeURL = url.DefaultHomeURL
	}
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
		homeURL:     homeURL,
	}
}

// HomeURL returns the page new tabs open on.
func (uc *ManageTabsUseCase) HomeURL() string {
	return uc.homeURL
}

// SetHomeURL changes the page new tabs open on. Empty values are ignored.
func (uc *ManageTabsUseCase) SetHomeURL(homeURL string) {
	if homeURL != "" {
		uc.homeURL = homeURL
	}
}

// Open appends a new tab and makes it active. The tab's URL is the
// normalized rawURL, or the home page when rawURL is blank.
func (uc *ManageTabsUseCase) Open(ctx context.Context, tabs *entity.TabList, rawURL string) (*entity.Tab, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("raw_url", rawURL).Msg("opening tab")

	if tabs == nil {
		return nil, fmt.Errorf("tab list is required")
	}

	target := url.Normalize(rawURL)
	if target == "" {
		target = uc.homeURL
	}

	tab := entity.NewTab(entity.TabID(uc.idGenerator()), target)
	tabs.Add(tab)
	tabs.ActiveTabID = tab.ID

	log.Info().
		Str("tab_id", string(tab.ID)).
		Str("url", target).
		Int("position", tab.Position).
		Msg("tab opened")

	return tab, nil
}

// Close removes a tab from the list.
// Returns true if it was the last tab; the caller then shuts the shell down.
func (uc *ManageTabsUseCase) Close(ctx context.Context, tabs *entity.TabList, tabID entity.TabID) (wasLast bool, err error) {
	ctx = logging.WithTabID(ctx, string(tabID))
	log := logging.FromContext(ctx)

	log.Debug().Msg("closing tab")

	if tabs == nil {
		return false, fmt.Errorf("tab list is required")
	}
	if tabs.Find(tabID) == nil {
		return false, fmt.Errorf("close %s: %w", tabID, ErrTabNotFound)
	}

	if tabs.Count() == 1 {
		log.Info().Msg("closing last tab")
		tabs.Remove(tabID)
		return true, nil
	}

	tabs.Remove(tabID)

	log.Info().
		Str("new_active", string(tabs.ActiveTabID)).
		Int("remaining", tabs.Count()).
		Msg("tab closed")

	return false, nil
}

// Switch makes the tab with tabID active.
func (uc *ManageTabsUseCase) Switch(ctx context.Context, tabs *entity.TabList, tabID entity.TabID) error {
	log := logging.FromContext(ctx)

	if tabs == nil {
		return fmt.Errorf("tab list is required")
	}
	if tabs.Find(tabID) == nil {
		return fmt.Errorf("switch %s: %w", tabID, ErrTabNotFound)
	}
	if tabs.ActiveTabID == tabID {
		return nil
	}

	previous := tabs.ActiveTabID
	tabs.ActiveTabID = tabID

	log.Debug().
		Str("from", string(previous)).
		Str("to", string(tabID)).
		Msg("switched tab")

	return nil
}

// SwitchByIndex makes the tab at index active.
func (uc *ManageTabsUseCase) SwitchByIndex(ctx context.Context, tabs *entity.TabList, index int) error {
	if tabs == nil {
		return fmt.Errorf("tab list is required")
	}
	tab := tabs.At(index)
	if tab == nil {
		return fmt.Errorf("switch to index %d: %w", index, ErrTabNotFound)
	}
	return uc.Switch(ctx, tabs, tab.ID)
}

// MarkLoading records that the tab started navigating to uri. The previous
// page title is dropped so the tab shows the placeholder until the new page
// reports one. Returns false when the tab no longer exists.
func (uc *ManageTabsUseCase) MarkLoading(ctx context.Context, tabs *entity.TabList, tabID entity.TabID, uri string) bool {
	tab := findTab(tabs, tabID)
	if tab == nil {
		logging.FromContext(ctx).Debug().Str("tab_id", string(tabID)).Msg("load start for closed tab dropped")
		return false
	}
	tab.State = entity.TabStateLoading
	tab.Title = ""
	if uri != "" {
		tab.URL = uri
	}
	return true
}

// UpdateTitle stores the latest page title reported for the tab. A blank
// title puts the placeholder back. Returns false when the tab no longer exists.
func (uc *ManageTabsUseCase) UpdateTitle(ctx context.Context, tabs *entity.TabList, tabID entity.TabID, title string) bool {
	tab := findTab(tabs, tabID)
	if tab == nil {
		logging.FromContext(ctx).Debug().Str("tab_id", string(tabID)).Msg("title for closed tab dropped")
		return false
	}
	tab.Title = title
	return true
}

// MarkLoaded records that the tab finished loading.
// Returns false when the tab no longer exists.
func (uc *ManageTabsUseCase) MarkLoaded(ctx context.Context, tabs *entity.TabList, tabID entity.TabID) bool {
	tab := findTab(tabs, tabID)
	if tab == nil {
		logging.FromContext(ctx).Debug().Str("tab_id", string(tabID)).Msg("load finish for closed tab dropped")
		return false
	}
	tab.State = entity.TabStateLoaded
	return true
}

func findTab(tabs *entity.TabList, id entity.TabID) *entity.Tab {
	if tabs == nil {
		return nil
	}
	return tabs.Find(id)
}
