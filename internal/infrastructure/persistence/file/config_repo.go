package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/domain/repository"
	"github.com/qualzed/qb/internal/logging"
)

const (
	prefixLanguage = "language="
	prefixWidth    = "x="
	prefixHeight   = "y="
)

// ConfigRepository keeps entity.Config in a prefix-keyed text file:
//
//	language=ru
//	x=800
//	y=600
//
// Lines may appear in any order; unknown lines are ignored.
type ConfigRepository struct {
	path     string
	defaults entity.Config
}

// NewConfigRepository creates a repository for the file at path. Fields
// missing from the file take the default language and the given size.
func NewConfigRepository(path string, defaultWidth, defaultHeight int) *ConfigRepository {
	return &ConfigRepository{
		path: path,
		defaults: entity.Config{
			Language: entity.DefaultLanguage,
			Width:    defaultWidth,
			Height:   defaultHeight,
		},
	}
}

// Path returns the file location.
func (r *ConfigRepository) Path() string {
	return r.path
}

// Load reads the config. A missing file yields the defaults.
func (r *ConfigRepository) Load(ctx context.Context) (entity.Config, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.FromContext(ctx).Debug().Str("path", r.path).Msg("config file not found, using defaults")
		return r.defaults, nil
	}
	if err != nil {
		return r.defaults, fmt.Errorf("failed to read config %s: %w", r.path, err)
	}
	return parseConfig(data, r.defaults), nil
}

// Save merges patch into the stored config and rewrites the file atomically.
func (r *ConfigRepository) Save(ctx context.Context, patch entity.ConfigPatch) error {
	if patch.Empty() {
		return nil
	}

	current, err := r.Load(ctx)
	if err != nil {
		return err
	}
	merged := patch.Apply(current)

	if err := writeFileAtomic(r.path, formatConfig(merged)); err != nil {
		return fmt.Errorf("failed to write config %s: %w", r.path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", r.path).
		Str("language", string(merged.Language)).
		Int("width", merged.Width).
		Int("height", merged.Height).
		Msg("config saved")
	return nil
}

func parseConfig(data []byte, defaults entity.Config) entity.Config {
	cfg := defaults
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, prefixLanguage):
			if lang := entity.Language(strings.TrimPrefix(line, prefixLanguage)); lang.Valid() {
				cfg.Language = lang
			}
		case strings.HasPrefix(line, prefixWidth):
			if n, ok := parseSize(strings.TrimPrefix(line, prefixWidth)); ok {
				cfg.Width = n
			}
		case strings.HasPrefix(line, prefixHeight):
			if n, ok := parseSize(strings.TrimPrefix(line, prefixHeight)); ok {
				cfg.Height = n
			}
		}
	}
	return cfg
}

func parseSize(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func formatConfig(cfg entity.Config) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%s\n", prefixLanguage, cfg.Language)
	fmt.Fprintf(&buf, "%s%d\n", prefixWidth, cfg.Width)
	fmt.Fprintf(&buf, "%s%d\n", prefixHeight, cfg.Height)
	return buf.Bytes()
}

// writeFileAtomic replaces path with data through a temp file in the same
// directory, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	tmpName = ""
	return nil
}

var _ repository.ConfigRepository = (*ConfigRepository)(nil)
