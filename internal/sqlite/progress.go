package sqlite

import (
	"context"
	"fmt"

	"github.com/spitfire8790/learn2code/internal/domain/progress"
)

// ProgressRepository implements progress.Repository and progress.EventLog
// for SQLite.
type ProgressRepository struct {
	db *DB
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Load reads the full progress record. Empty tables yield an empty record,
// which is indistinguishable from no prior state by design.
func (r *ProgressRepository) Load(ctx context.Context) (*progress.Record, error) {
	rec := progress.NewRecord()

	if err := r.loadSet(ctx, "completed_modules", rec.Completed); err != nil {
		return nil, err
	}
	if err := r.loadSet(ctx, "bookmarked_modules", rec.Bookmarked); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *ProgressRepository) loadSet(ctx context.Context, table string, set map[string]bool) error {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT module_id FROM %s", table))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan %s: %w", table, err)
		}
		set[id] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating %s: %w", table, err)
	}
	return nil
}

// Save replaces the durable record with rec in one transaction, so a crash
// mid-save leaves the previous state intact.
func (r *ProgressRepository) Save(ctx context.Context, rec *progress.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for table, ids := range map[string][]string{
		"completed_modules":  rec.CompletedIDs(),
		"bookmarked_modules": rec.BookmarkedIDs(),
	} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		for _, id := range ids {
			query := fmt.Sprintf("INSERT INTO %s (module_id) VALUES (?)", table)
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return fmt.Errorf("failed to write %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress: %w", err)
	}
	return nil
}

// Append records one toggle event.
func (r *ProgressRepository) Append(ctx context.Context, event progress.Event) error {
	query := `
		INSERT INTO progress_events (id, kind, module_id, marked, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	marked := 0
	if event.Marked {
		marked = 1
	}
	_, err := r.db.ExecContext(ctx, query, event.ID, string(event.Kind), event.ModuleID, marked, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// Recent returns the latest toggle events, newest first.
func (r *ProgressRepository) Recent(ctx context.Context, limit int) ([]progress.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, kind, module_id, marked, created_at
		FROM progress_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []progress.Event
	for rows.Next() {
		var (
			event  progress.Event
			kind   string
			marked int
		)
		if err := rows.Scan(&event.ID, &kind, &event.ModuleID, &marked, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Kind = progress.EventKind(kind)
		event.Marked = marked != 0
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}
