package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spitfire8790/learn2code/internal/domain/progress"
	"github.com/spitfire8790/learn2code/internal/repository"
)

func TestProgressRepository_MissingFileIsNotFound(t *testing.T) {
	repo := NewProgressRepository(filepath.Join(t.TempDir(), "progress.json"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProgressRepository_CorruptFileIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewProgressRepository(path).Load(context.Background())
	require.ErrorIs(t, err, repository.ErrCorrupt)
}

func TestProgressRepository_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	repo := NewProgressRepository(path)
	ctx := context.Background()

	rec := progress.NewRecord()
	rec.Completed["module-0-2-git"] = true
	rec.Completed["module-0-1-setup"] = true
	rec.Bookmarked["module-1-1-html"] = true
	require.NoError(t, repo.Save(ctx, rec))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"module-0-1-setup", "module-0-2-git"}, loaded.CompletedIDs())
	require.Equal(t, []string{"module-1-1-html"}, loaded.BookmarkedIDs())
}

func TestProgressRepository_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	repo := NewProgressRepository(path)
	ctx := context.Background()

	first := progress.NewRecord()
	first.Completed["module-0-1-setup"] = true
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, progress.NewRecord()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded.CompletedIDs())
}

func TestProgressRepository_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nested", "progress.json")
	repo := NewProgressRepository(path)

	require.NoError(t, repo.Save(context.Background(), progress.NewRecord()))
	require.FileExists(t, path)
}

func TestProgressRepository_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewProgressRepository(filepath.Join(dir, "progress.json"))

	require.NoError(t, repo.Save(context.Background(), progress.NewRecord()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "progress.json", entries[0].Name())
}
