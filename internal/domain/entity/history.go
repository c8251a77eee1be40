package entity

// HistoryEntry is one visited URL in the history log.
// Entries are append-only and may repeat.
type HistoryEntry struct {
	URL string `json:"url"`
	// Index is the 0-based position in the log, oldest first.
	Index int `json:"index"`
}

// NewestFirst returns the entries in reverse log order.
func NewestFirst(urls []string) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(urls))
	for i := len(urls) - 1; i >= 0; i-- {
		entries = append(entries, HistoryEntry{URL: urls[i], Index: i})
	}
	return entries
}
