package repository

import "context"

// HistoryRepository is the append-only log of visited URLs.
type HistoryRepository interface {
	// Append adds url to the end of the log.
	Append(ctx context.Context, url string) error

	// ReadAll returns every URL in log order, oldest first.
	// A log that does not exist yet reads as empty.
	ReadAll(ctx context.Context) ([]string, error)
}
