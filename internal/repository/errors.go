package repository

import "errors"

var (
	// ErrNotFound is returned when no stored state exists
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when stored state exists but fails to parse
	ErrCorrupt = errors.New("stored state is corrupt")
)
