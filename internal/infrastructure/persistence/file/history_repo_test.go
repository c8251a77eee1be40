package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepository_FreshStoreIsEmpty(t *testing.T) {
	repo := NewHistoryRepository(HistoryPath(t.TempDir()))

	urls, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestHistoryRepository_AppendThenReadAll(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(HistoryPath(t.TempDir()))

	for _, u := range []string{"https://a.example", "https://b.example", "https://a.example"} {
		require.NoError(t, repo.Append(ctx, u))
	}

	urls, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://a.example"}, urls)
}

func TestHistoryRepository_AppendStripsLineBreaks(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(HistoryPath(t.TempDir()))

	require.NoError(t, repo.Append(ctx, "https://x.example/a\nb"))
	require.NoError(t, repo.Append(ctx, "   "))

	urls, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.example/ab"}, urls)
}

func TestHistoryRepository_ReadAllSkipsBlankLines(t *testing.T) {
	path := HistoryPath(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte("https://one\n\n  \nhttps://two\n"), filePerm))

	urls, err := NewHistoryRepository(path).ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://one", "https://two"}, urls)
}

func TestHistoryRepository_AppendFailsWhenDirIsFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, historyDirName), []byte("x"), filePerm))

	err := NewHistoryRepository(HistoryPath(base)).Append(context.Background(), "https://x")
	require.Error(t, err)
}
