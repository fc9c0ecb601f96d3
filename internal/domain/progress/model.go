package progress

import (
	"sort"
	"time"
)

// Record holds the learner's persisted progress state: the set of completed
// module ids and the set of bookmarked module ids. The two sets are
// independent; ids are not validated against any curriculum model, so a
// stale id from a since-removed module is carried along harmlessly.
type Record struct {
	Completed  map[string]bool
	Bookmarked map[string]bool
}

// NewRecord returns an empty progress record.
func NewRecord() *Record {
	return &Record{
		Completed:  map[string]bool{},
		Bookmarked: map[string]bool{},
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	out := NewRecord()
	for id := range r.Completed {
		out.Completed[id] = true
	}
	for id := range r.Bookmarked {
		out.Bookmarked[id] = true
	}
	return out
}

// CompletedIDs returns the completed set as a sorted slice.
func (r *Record) CompletedIDs() []string {
	return sortedKeys(r.Completed)
}

// BookmarkedIDs returns the bookmarked set as a sorted slice.
func (r *Record) BookmarkedIDs() []string {
	return sortedKeys(r.Bookmarked)
}

func sortedKeys(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EventKind identifies a progress mutation.
type EventKind string

const (
	EventCompletedToggled EventKind = "completed_toggled"
	EventBookmarkToggled  EventKind = "bookmark_toggled"
)

// Event is one entry in the toggle audit log. Marked reports the state the
// toggle left the module in.
type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	ModuleID  string    `json:"module_id"`
	Marked    bool      `json:"marked"`
	CreatedAt time.Time `json:"created_at"`
}
