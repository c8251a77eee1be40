package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/qualzed/qb/internal/domain/repository"
	"github.com/qualzed/qb/internal/logging"
)

// maxHistoryLine bounds a single stored URL.
const maxHistoryLine = 1 << 20

// HistoryRepository is an append-only log with one URL per line.
type HistoryRepository struct {
	path string
}

// NewHistoryRepository creates a history log at path.
func NewHistoryRepository(path string) *HistoryRepository {
	return &HistoryRepository{path: path}
}

// Path returns the file location.
func (r *HistoryRepository) Path() string {
	return r.path
}

// Append writes url as a new line and syncs it to disk.
// Line breaks inside url are removed; a blank url is ignored.
func (r *HistoryRepository) Append(ctx context.Context, url string) error {
	url = strings.TrimSpace(strings.NewReplacer("\r", "", "\n", "").Replace(url))
	if url == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open history %s: %w", r.path, err)
	}

	if _, err := f.WriteString(url + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append history: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to sync history: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close history: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("url", url).Msg("history appended")
	return nil
}

// ReadAll returns every URL in file order. A missing file reads as empty.
func (r *HistoryRepository) ReadAll(ctx context.Context) ([]string, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.FromContext(ctx).Warn().Err(cerr).Msg("failed to close history")
		}
	}()

	var urls []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxHistoryLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return urls, nil
}

var _ repository.HistoryRepository = (*HistoryRepository)(nil)
