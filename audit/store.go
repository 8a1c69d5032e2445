package audit

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("portal: audit record not found")

// Store persists audit records. Implementations must be safe for
// concurrent use; the extension appends from whichever goroutine runs
// the dispatch.
type Store interface {
	// Append persists a fully-formed record.
	Append(ctx context.Context, rec *Record) error

	// List returns up to limit records, newest first. limit <= 0 means
	// no limit.
	List(ctx context.Context, limit int) ([]*Record, error)
}
