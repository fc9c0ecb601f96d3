// Package jsonfile persists the progress record as a single JSON document,
// mirroring the key-value shape browser clients keep in local storage.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spitfire8790/learn2code/internal/domain/progress"
	"github.com/spitfire8790/learn2code/internal/repository"
)

// persistedRecord is the on-disk shape: two named, independent id sets.
type persistedRecord struct {
	CompletedModuleIDs  []string `json:"completedModuleIds"`
	BookmarkedModuleIDs []string `json:"bookmarkedModuleIds"`
}

// ProgressRepository implements progress.Repository over a JSON file.
type ProgressRepository struct {
	path string
}

// NewProgressRepository creates a repository storing state at path.
func NewProgressRepository(path string) *ProgressRepository {
	return &ProgressRepository{path: path}
}

// Load reads the stored record. A missing file maps to
// repository.ErrNotFound and unparseable content to repository.ErrCorrupt;
// the caller decides the recovery policy.
func (r *ProgressRepository) Load(ctx context.Context) (*progress.Record, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("read progress file: %w", err)
	}

	var stored persistedRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorrupt, err)
	}

	rec := progress.NewRecord()
	for _, id := range stored.CompletedModuleIDs {
		rec.Completed[id] = true
	}
	for _, id := range stored.BookmarkedModuleIDs {
		rec.Bookmarked[id] = true
	}
	return rec, nil
}

// Save writes the record to a temporary sibling file and renames it into
// place, so an interrupted save leaves the prior durable copy untouched.
func (r *ProgressRepository) Save(ctx context.Context, rec *progress.Record) error {
	stored := persistedRecord{
		CompletedModuleIDs:  rec.CompletedIDs(),
		BookmarkedModuleIDs: rec.BookmarkedIDs(),
	}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create progress directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp progress file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write progress file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close progress file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish progress file: %w", err)
	}
	return nil
}
