package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// TabState tracks a tab's page load.
type TabState int

const (
	TabStateCreated TabState = iota
	TabStateLoading
	TabStateLoaded
)

func (s TabState) String() string {
	switch s {
	case TabStateCreated:
		return "created"
	case TabStateLoading:
		return "loading"
	case TabStateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Tab is one browser tab. The web view rendering it lives in the UI layer,
// keyed by ID.
type Tab struct {
	ID        TabID
	Title     string // page title, empty until the page reports one
	URL       string
	State     TabState
	Position  int // 0-indexed position in the tab strip
	CreatedAt time.Time
}

// NewTab creates a tab that will navigate to url.
func NewTab(id TabID, url string) *Tab {
	return &Tab{
		ID:        id,
		URL:       url,
		State:     TabStateCreated,
		CreatedAt: time.Now(),
	}
}

// HasPageTitle reports whether the tab shows a real page title rather than
// the localized placeholder.
func (t *Tab) HasPageTitle() bool {
	return t.Title != ""
}

// DisplayTitle returns the page title or placeholder when there is none.
func (t *Tab) DisplayTitle(placeholder string) string {
	if t.Title != "" {
		return t.Title
	}
	return placeholder
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{Tabs: make([]*Tab, 0)}
}

// Add appends a tab. The first tab added becomes active.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and reindexes positions.
// When the active tab is removed, the tab that slides into its index becomes
// active, or the new last tab if it was at the end.
func (tl *TabList) Remove(id TabID) bool {
	i := tl.IndexOf(id)
	if i < 0 {
		return false
	}
	tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
	for j := i; j < len(tl.Tabs); j++ {
		tl.Tabs[j].Position = j
	}

	if tl.ActiveTabID != id {
		return true
	}
	switch {
	case len(tl.Tabs) == 0:
		tl.ActiveTabID = ""
	case i < len(tl.Tabs):
		tl.ActiveTabID = tl.Tabs[i].ID
	default:
		tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
	}
	return true
}

// IndexOf returns the position of the tab, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Find returns a tab by ID, or nil.
func (tl *TabList) Find(id TabID) *Tab {
	if i := tl.IndexOf(id); i >= 0 {
		return tl.Tabs[i]
	}
	return nil
}

// At returns the tab at index, or nil when out of range.
func (tl *TabList) At(index int) *Tab {
	if index < 0 || index >= len(tl.Tabs) {
		return nil
	}
	return tl.Tabs[index]
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}
