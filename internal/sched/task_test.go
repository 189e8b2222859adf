package sched

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestNewTaskResetsRunState(t *testing.T) {
	task := NewTask(7, "A", 10, 3, 2)
	assert.Equal(t, 10, task.RemainingTime)
	assert.Equal(t, Unset, task.StartTime)
	assert.Equal(t, Unset, task.CompletionTime)
	assert.False(t, task.Done())
}

func TestCloneDropsRunState(t *testing.T) {
	task := NewTask(1, "A", 10, 0, 2)
	task.RemainingTime = 0
	task.StartTime = 4
	task.finish(14)

	c := task.Clone()
	assert.Equal(t, TaskID(1), c.ID)
	assert.Equal(t, "A", c.Name)
	assert.Equal(t, 10, c.BurstTime)
	assert.Equal(t, 10, c.RemainingTime)
	assert.Equal(t, Unset, c.StartTime)
	assert.Equal(t, Unset, c.CompletionTime)
	assert.Zero(t, c.WaitingTime)
	assert.Zero(t, c.TurnaroundTime)

	// the original keeps its own state
	assert.Equal(t, 14, task.CompletionTime)
}

func TestFinishDerivesMetrics(t *testing.T) {
	task := NewTask(0, "B", 5, 2, 1)
	task.RemainingTime = 0
	task.finish(15)
	assert.True(t, task.Done())
	assert.Equal(t, 13, task.TurnaroundTime)
	assert.Equal(t, 8, task.WaitingTime)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		task Task
		ok   bool
	}{
		{"valid", NewTask(0, "A", 1, 0, 0), true},
		{"empty name", NewTask(0, "", 1, 0, 0), false},
		{"zero burst", NewTask(0, "A", 0, 0, 0), false},
		{"negative burst", NewTask(0, "A", -3, 0, 0), false},
		{"negative arrival", NewTask(0, "A", 1, -1, 0), false},
		{"negative priority", NewTask(0, "A", 1, 0, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, ErrInvalidTask, errors.Cause(err))
		})
	}
}

func TestValidateAllReportsEveryFailure(t *testing.T) {
	tasks := []Task{
		NewTask(0, "A", 1, 0, 0),
		NewTask(0, "B", 0, 0, 0),
		NewTask(0, "C", 1, -2, 0),
	}
	err := ValidateAll(tasks)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "task #1")
	assert.Contains(t, err.Error(), "task #2")
	assert.True(t, IsValidation(err))

	assert.NoError(t, ValidateAll(tasks[:1]))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsValidation(ErrQueueFull))
}
