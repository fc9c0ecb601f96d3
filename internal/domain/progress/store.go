package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spitfire8790/learn2code/internal/repository"
)

// Store owns the learner's progress state. It hydrates once from the
// repository at open, serves all reads from its in-memory record, and
// writes the full record through to durable storage on every toggle before
// the mutation becomes visible to readers. A failed write leaves both the
// in-memory and durable copies in their prior state.
type Store struct {
	repo   Repository
	events EventLog
	logger *slog.Logger

	mu  sync.Mutex
	rec *Record
}

// Open hydrates a store from durable storage. Missing prior state starts
// empty; unreadable or corrupt state is discarded and also starts empty.
// Progress is best-effort state, so recovery is silent beyond a log line.
func Open(ctx context.Context, repo Repository, events EventLog, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rec, err := repo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		rec = NewRecord()
	default:
		logger.Warn("discarding unreadable progress state", "error", err)
		rec = NewRecord()
	}

	return &Store{repo: repo, events: events, logger: logger, rec: rec}
}

// ToggleCompleted flips moduleID's membership in the completed set and
// reports whether the module is completed afterwards. Unknown ids are fine:
// the store doesn't validate against any curriculum model.
func (s *Store) ToggleCompleted(ctx context.Context, moduleID string) (bool, error) {
	return s.toggle(ctx, moduleID, EventCompletedToggled)
}

// ToggleBookmark flips moduleID's membership in the bookmarked set and
// reports whether the module is bookmarked afterwards.
func (s *Store) ToggleBookmark(ctx context.Context, moduleID string) (bool, error) {
	return s.toggle(ctx, moduleID, EventBookmarkToggled)
}

func (s *Store) toggle(ctx context.Context, moduleID string, kind EventKind) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.rec.Clone()
	set := next.Completed
	if kind == EventBookmarkToggled {
		set = next.Bookmarked
	}

	marked := !set[moduleID]
	if marked {
		set[moduleID] = true
	} else {
		delete(set, moduleID)
	}

	// Write-through: the mutation is not authoritative until persisted.
	if err := s.repo.Save(ctx, next); err != nil {
		return false, fmt.Errorf("persisting progress: %w", err)
	}
	s.rec = next

	if s.events != nil {
		event := Event{
			ID:        uuid.NewString(),
			Kind:      kind,
			ModuleID:  moduleID,
			Marked:    marked,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.events.Append(ctx, event); err != nil {
			s.logger.Warn("failed to record progress event", "module", moduleID, "error", err)
		}
	}

	return marked, nil
}

// Snapshot returns a copy of the current record for read-only use.
func (s *Store) Snapshot() *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Clone()
}

// RecentActivity returns the most recent toggle events, newest first.
// Stores without an event log return nothing.
func (s *Store) RecentActivity(ctx context.Context, limit int) ([]Event, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.Recent(ctx, limit)
}
