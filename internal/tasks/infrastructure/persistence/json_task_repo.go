// Package persistence implements the task repository on a flat JSON file.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/tasklet/internal/shared/security"
	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
)

// taskRecord is the on-disk shape of one task. Array order in the file is
// the sequence order and defines task positions.
type taskRecord struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// JSONTaskRepository implements task.Repository using a single JSON file.
type JSONTaskRepository struct {
	path string
}

// NewJSONTaskRepository creates a repository backed by the file at path.
// The path is validated and resolved once at construction.
func NewJSONTaskRepository(path string) (*JSONTaskRepository, error) {
	cleanPath, err := security.ValidateFilePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid tasks file path: %w", err)
	}
	return &JSONTaskRepository{path: cleanPath}, nil
}

// Path returns the resolved storage file path.
func (r *JSONTaskRepository) Path() string {
	return r.path
}

// Load reads the full task sequence from the file. A missing file yields
// an empty sequence and no error; any other failure wraps task.ErrStorage.
func (r *JSONTaskRepository) Load(_ context.Context) ([]*task.Task, error) {
	data, err := security.SafeReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*task.Task{}, nil
		}
		return nil, fmt.Errorf("%w: read %q: %v", task.ErrStorage, r.path, err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", task.ErrStorage, r.path, err)
	}

	tasks := make([]*task.Task, 0, len(records))
	for i, rec := range records {
		t, err := r.recordToTask(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d in %q: %v", task.ErrStorage, i+1, r.path, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save writes the full task sequence, replacing any prior file content.
// The write goes through a temp file in the target directory followed by a
// rename, so a failed write never truncates the previous file.
func (r *JSONTaskRepository) Save(_ context.Context, tasks []*task.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskToRecord(t))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode tasks: %v", task.ErrStorage, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: create %q: %v", task.ErrStorage, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %q: %v", task.ErrStorage, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %q: %v", task.ErrStorage, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %q: %v", task.ErrStorage, tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %q: %v", task.ErrStorage, r.path, err)
	}
	return nil
}

func (r *JSONTaskRepository) recordToTask(rec taskRecord) (*task.Task, error) {
	if rec.Description == "" {
		return nil, fmt.Errorf("missing description")
	}

	// Records written before surrogate IDs existed get one minted on load.
	id := uuid.New()
	if rec.ID != "" {
		parsed, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid id: %v", err)
		}
		id = parsed
	}

	var dueDate *time.Time
	if rec.DueDate != "" {
		d, err := time.Parse(task.DueDateLayout, rec.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date: %v", err)
		}
		dueDate = &d
	}

	createdAt, err := time.Parse(task.CreatedAtLayout, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %v", err)
	}

	priority := value_objects.Priority(rec.Priority)

	return task.Rehydrate(id, rec.Description, dueDate, priority, rec.Completed, createdAt), nil
}

func taskToRecord(t *task.Task) taskRecord {
	rec := taskRecord{
		ID:          t.ID().String(),
		Description: t.Description(),
		Priority:    int(t.Priority()),
		Completed:   t.IsCompleted(),
		CreatedAt:   t.CreatedAt().Format(task.CreatedAtLayout),
	}
	if t.DueDate() != nil {
		rec.DueDate = t.DueDate().Format(task.DueDateLayout)
	}
	return rec
}
