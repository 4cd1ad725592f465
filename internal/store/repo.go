package store

import (
	"context"
	"time"
)

// QueryOpts configures run queries with filtering and pagination.
type QueryOpts struct {
	Limit       int       // max results (0 = unlimited)
	BatchID     string    // only runs of this batch
	InvalidOnly bool      // only rejected documents
	From        time.Time // timestamp >= From
	To          time.Time // timestamp <= To
}

// Run is the recorded outcome of validating one document.
type Run struct {
	ID        string
	BatchID   string
	Timestamp time.Time
	Source    string
	Digest    string // hex SHA-256 of the document bytes
	ModelKind string
	Valid     bool
	ErrorKind string
	Message   string
	Duration  time.Duration
}

// RunRepo records and queries validation runs.
type RunRepo interface {
	// Append stores a run. Timestamp defaults to now.
	Append(ctx context.Context, run *Run) error

	// List returns runs newest first.
	List(ctx context.Context, opts QueryOpts) ([]Run, error)

	// Get returns the run with the given ID, or nil if none exists.
	Get(ctx context.Context, id string) (*Run, error)
}
