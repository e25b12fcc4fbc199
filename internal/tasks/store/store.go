// Package store owns the ordered task sequence and keeps it synchronized
// with durable storage on every mutation.
package store

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/value_objects"
)

// ErrInvalidTaskNumber is returned when a position argument falls outside
// [1, Len()]. The sequence is left untouched and nothing is persisted.
var ErrInvalidTaskNumber = errors.New("invalid task number")

// Store manages the ordered task sequence. The 1-based position of a task
// is its only external identifier; deleting a task shifts every later
// position down by one. Store assumes exclusive ownership of its storage
// for the lifetime of one process run — it is not safe for concurrent use.
type Store struct {
	repo   task.Repository
	logger *slog.Logger
	tasks  []*task.Task
}

// New creates an empty store backed by repo.
func New(repo task.Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		repo:   repo,
		logger: logger,
		tasks:  []*task.Task{},
	}
}

// Open creates a store and hydrates it from storage. On load failure the
// returned store is usable but empty, and the error is returned so the
// caller can degrade instead of aborting.
func Open(ctx context.Context, repo task.Repository, logger *slog.Logger) (*Store, error) {
	s := New(repo, logger)
	if err := s.Load(ctx); err != nil {
		return s, err
	}
	return s, nil
}

// Len returns the current sequence length.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a new task to the end of the sequence and persists. The
// created task is returned even when persistence fails; in that case the
// in-memory sequence keeps the task and the error tells the caller that
// durable state now lags memory.
func (s *Store) Add(ctx context.Context, description string, dueDate *time.Time, priority value_objects.Priority) (*task.Task, error) {
	t, err := task.NewTask(description, dueDate, priority)
	if err != nil {
		return nil, err
	}

	s.tasks = append(s.tasks, t)
	s.logger.Debug("task added", "id", t.ID(), "position", len(s.tasks))

	if err := s.Save(ctx); err != nil {
		return t, err
	}
	return t, nil
}

// List returns a lazy, restartable view over the sequence as
// (position, task) pairs. Positions are 1-based and follow the underlying
// sequence even when filters skip entries, so the numbers shown to the
// user remain valid arguments for Complete and Delete.
//
// Completed tasks are skipped unless showCompleted is set; when
// priorityFilter is non-nil only tasks of that priority are yielded.
// Ordering is strictly sequence order. The view never mutates the store.
func (s *Store) List(showCompleted bool, priorityFilter *value_objects.Priority) iter.Seq2[int, *task.Task] {
	return func(yield func(int, *task.Task) bool) {
		for i, t := range s.tasks {
			if t.IsCompleted() && !showCompleted {
				continue
			}
			if priorityFilter != nil && t.Priority() != *priorityFilter {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// Complete marks the task at the 1-based position as completed and
// persists. Completing an already-completed task is a no-op success. An
// out-of-range position fails with ErrInvalidTaskNumber before anything
// is mutated or persisted.
func (s *Store) Complete(ctx context.Context, position int) (*task.Task, error) {
	if position < 1 || position > len(s.tasks) {
		return nil, ErrInvalidTaskNumber
	}

	t := s.tasks[position-1]
	t.Complete()
	s.logger.Debug("task completed", "id", t.ID(), "position", position)

	if err := s.Save(ctx); err != nil {
		return t, err
	}
	return t, nil
}

// Delete removes the task at the 1-based position and persists. All
// subsequent positions shift down by one. An out-of-range position fails
// with ErrInvalidTaskNumber before anything is mutated or persisted.
func (s *Store) Delete(ctx context.Context, position int) (*task.Task, error) {
	if position < 1 || position > len(s.tasks) {
		return nil, ErrInvalidTaskNumber
	}

	t := s.tasks[position-1]
	s.tasks = append(s.tasks[:position-1], s.tasks[position:]...)
	s.logger.Debug("task deleted", "id", t.ID(), "position", position)

	if err := s.Save(ctx); err != nil {
		return t, err
	}
	return t, nil
}

// Save serializes the full sequence to storage, overwriting it. The
// in-memory sequence stays authoritative regardless of the outcome; a
// failed save is reported but never rolls back a mutation.
func (s *Store) Save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.tasks); err != nil {
		s.logger.Warn("failed to persist tasks, in-memory state is ahead of storage", "error", err)
		return err
	}
	return nil
}

// Load replaces the in-memory sequence with the stored one. A missing
// storage file yields an empty sequence and no error. On any failure the
// store is left empty rather than partially populated.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		s.tasks = []*task.Task{}
		return err
	}
	s.tasks = tasks
	return nil
}
