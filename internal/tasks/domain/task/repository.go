package task

import (
	"context"
	"errors"
)

// ErrStorage is the sentinel wrapped by repository implementations for any
// read, write, or parse failure. Callers check it with errors.Is.
var ErrStorage = errors.New("task storage failure")

// Repository defines the interface for task persistence. The store owns
// the ordered sequence; the repository only moves the full sequence to and
// from durable storage.
type Repository interface {
	// Load reads the full task sequence. A missing storage file is not an
	// error and yields an empty sequence.
	Load(ctx context.Context) ([]*Task, error)
	// Save writes the full task sequence, replacing any prior content.
	Save(ctx context.Context, tasks []*Task) error
}
