package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("task description cannot be empty")
)

// Layouts used for the on-disk record format. CreatedAtLayout is minute
// precision; stored values round-trip exactly.
const (
	CreatedAtLayout = "2006-01-02 15:04"
	DueDateLayout   = "2006-01-02"
)

// Task represents one unit of trackable work.
type Task struct {
	id          uuid.UUID
	description string
	dueDate     *time.Time
	priority    value_objects.Priority
	completed   bool
	createdAt   time.Time
}

// NewTask creates a new task. The description must be non-empty after
// trimming; the priority is normalized to Medium when out of domain.
// The creation timestamp is stamped in UTC at minute precision; the
// stored record format carries no zone, so UTC is the canonical zone on
// both the write and the read path.
func NewTask(description string, dueDate *time.Time, priority value_objects.Priority) (*Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &Task{
		id:          uuid.New(),
		description: description,
		dueDate:     dueDate,
		priority:    priority.Normalize(),
		completed:   false,
		createdAt:   time.Now().UTC().Truncate(time.Minute),
	}, nil
}

// Rehydrate recreates a task from persisted state. The creation timestamp
// is taken verbatim from storage, never re-stamped; it is converted to
// UTC so that re-serializing it writes the same instant back.
func Rehydrate(id uuid.UUID, description string, dueDate *time.Time, priority value_objects.Priority, completed bool, createdAt time.Time) *Task {
	return &Task{
		id:          id,
		description: description,
		dueDate:     dueDate,
		priority:    priority.Normalize(),
		completed:   completed,
		createdAt:   createdAt.UTC(),
	}
}

// Getters

func (t *Task) ID() uuid.UUID                       { return t.id }
func (t *Task) Description() string                 { return t.description }
func (t *Task) DueDate() *time.Time                 { return t.dueDate }
func (t *Task) Priority() value_objects.Priority    { return t.priority }
func (t *Task) IsCompleted() bool                   { return t.completed }
func (t *Task) CreatedAt() time.Time                { return t.createdAt }

// Complete marks the task as completed. Completing an already-completed
// task is a no-op.
func (t *Task) Complete() {
	t.completed = true
}

// Render returns the one-line human-readable form of the task, e.g.
//
//	[ ] Buy milk (Priority: High, Due: 2024-01-10)
//	[✓] Buy milk (Priority: High)
func (t *Task) Render() string {
	mark := " "
	if t.completed {
		mark = "✓"
	}
	due := ""
	if t.dueDate != nil {
		due = ", Due: " + t.dueDate.Format(DueDateLayout)
	}
	return fmt.Sprintf("[%s] %s (Priority: %s%s)", mark, t.description, t.priority, due)
}
