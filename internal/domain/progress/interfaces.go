package progress

import "context"

// Repository provides durable persistence for the progress record. Load
// reports repository.ErrNotFound when no prior state exists and
// repository.ErrCorrupt when stored state fails to parse; the store maps
// both to an empty record. Save replaces the full durable copy and must be
// atomic: a crash mid-save leaves the prior copy intact, never a torn one.
type Repository interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec *Record) error
}

// EventLog records progress mutations for the activity surface. Backends
// without event support simply aren't wired with one.
type EventLog interface {
	Append(ctx context.Context, event Event) error
	Recent(ctx context.Context, limit int) ([]Event, error)
}
