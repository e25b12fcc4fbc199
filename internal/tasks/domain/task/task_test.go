package task_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasklet/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tsk, err := task.NewTask("Buy milk", nil, value_objects.PriorityHigh)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tsk.ID())
	assert.Equal(t, "Buy milk", tsk.Description())
	assert.Nil(t, tsk.DueDate())
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())
	assert.False(t, tsk.IsCompleted())
	assert.False(t, tsk.CreatedAt().IsZero())
}

func TestNewTask_EmptyDescription(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for _, description := range tests {
		t.Run(description, func(t *testing.T) {
			_, err := task.NewTask(description, nil, value_objects.PriorityMedium)
			require.Error(t, err)
			assert.ErrorIs(t, err, task.ErrEmptyDescription)
		})
	}
}

func TestNewTask_TrimsDescription(t *testing.T) {
	tsk, err := task.NewTask("  Buy milk  ", nil, value_objects.PriorityMedium)

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", tsk.Description())
}

func TestNewTask_NormalizesInvalidPriority(t *testing.T) {
	for _, p := range []value_objects.Priority{0, 4, -1, 99} {
		tsk, err := task.NewTask("Buy milk", nil, p)
		require.NoError(t, err)
		assert.Equal(t, value_objects.PriorityMedium, tsk.Priority())
	}
}

func TestNewTask_CreatedAtMinutePrecision(t *testing.T) {
	tsk, err := task.NewTask("Buy milk", nil, value_objects.PriorityMedium)

	require.NoError(t, err)
	assert.Zero(t, tsk.CreatedAt().Second())
	assert.Zero(t, tsk.CreatedAt().Nanosecond())
}

func TestNewTask_CreatedAtIsUTC(t *testing.T) {
	tsk, err := task.NewTask("Buy milk", nil, value_objects.PriorityMedium)

	require.NoError(t, err)
	// The stored record format carries no zone; UTC is canonical so the
	// formatted timestamp reads back as the same instant on any host.
	assert.Equal(t, time.UTC, tsk.CreatedAt().Location())
}

func TestTask_Rehydrate_NormalizesZoneToUTC(t *testing.T) {
	eastern := time.FixedZone("EDT", -4*60*60)
	createdAt := time.Date(2026, 8, 29, 10, 44, 0, 0, eastern)

	tsk := task.Rehydrate(uuid.New(), "Buy milk", nil, value_objects.PriorityMedium, false, createdAt)

	assert.Equal(t, time.UTC, tsk.CreatedAt().Location())
	assert.True(t, tsk.CreatedAt().Equal(createdAt))
	assert.Equal(t, "2026-08-29 14:44", tsk.CreatedAt().Format(task.CreatedAtLayout))
}

func TestTask_Complete(t *testing.T) {
	tsk, _ := task.NewTask("Buy milk", nil, value_objects.PriorityMedium)

	tsk.Complete()
	assert.True(t, tsk.IsCompleted())

	// Idempotent
	tsk.Complete()
	assert.True(t, tsk.IsCompleted())
}

func TestTask_Rehydrate(t *testing.T) {
	id := uuid.New()
	createdAt, err := time.Parse(task.CreatedAtLayout, "2024-01-10 09:30")
	require.NoError(t, err)
	due, err := time.Parse(task.DueDateLayout, "2024-01-15")
	require.NoError(t, err)

	tsk := task.Rehydrate(id, "Buy milk", &due, value_objects.PriorityHigh, true, createdAt)

	assert.Equal(t, id, tsk.ID())
	assert.Equal(t, "Buy milk", tsk.Description())
	require.NotNil(t, tsk.DueDate())
	assert.Equal(t, due, *tsk.DueDate())
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())
	assert.True(t, tsk.IsCompleted())
	assert.Equal(t, createdAt, tsk.CreatedAt())
	assert.Equal(t, "2024-01-10 09:30", tsk.CreatedAt().Format(task.CreatedAtLayout))
}

func TestTask_Render(t *testing.T) {
	due, _ := time.Parse(task.DueDateLayout, "2024-01-10")

	tests := []struct {
		name      string
		dueDate   *time.Time
		priority  value_objects.Priority
		completed bool
		want      string
	}{
		{"pending with due date", &due, value_objects.PriorityHigh, false, "[ ] Buy milk (Priority: High, Due: 2024-01-10)"},
		{"completed with due date", &due, value_objects.PriorityHigh, true, "[✓] Buy milk (Priority: High, Due: 2024-01-10)"},
		{"no due date", nil, value_objects.PriorityLow, false, "[ ] Buy milk (Priority: Low)"},
		{"medium priority", nil, value_objects.PriorityMedium, false, "[ ] Buy milk (Priority: Medium)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tsk, err := task.NewTask("Buy milk", tt.dueDate, tt.priority)
			require.NoError(t, err)
			if tt.completed {
				tsk.Complete()
			}
			assert.Equal(t, tt.want, tsk.Render())
		})
	}
}
