package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityDoesNotPreempt(t *testing.T) {
	tasks := []Task{
		NewTask(0, "long", 10, 0, 5),
		NewTask(0, "urgent", 2, 1, 0),
	}
	res, err := NewPriorityScheduler(nil).Run(tasks)
	require.NoError(t, err)

	long, urgent := res.Tasks[0], res.Tasks[1]
	assert.Equal(t, 0, long.StartTime)
	assert.Equal(t, 10, long.CompletionTime)
	assert.Equal(t, 10, urgent.StartTime)
	assert.Equal(t, 12, urgent.CompletionTime)
	assert.Len(t, res.Slices, 2)
}

func TestPriorityPicksLowestValueAmongPending(t *testing.T) {
	tasks := []Task{
		NewTask(0, "first", 4, 0, 3),
		NewTask(0, "low", 1, 1, 8),
		NewTask(0, "high", 1, 2, 1),
		NewTask(0, "mid", 1, 3, 4),
	}
	res, err := NewPriorityScheduler(nil).Run(tasks)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "high", "mid", "low"}, res.CompletionOrder())
}

func TestPriorityJumpsOverIdleGap(t *testing.T) {
	tasks := []Task{
		NewTask(0, "a", 2, 0, 1),
		NewTask(0, "b", 3, 10, 0),
	}
	res, err := NewPriorityScheduler(nil).Run(tasks)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Tasks[1].StartTime)
	assert.Equal(t, 13, res.Tasks[1].CompletionTime)
	assert.Zero(t, res.Tasks[1].WaitingTime)

	sum := res.Summary()
	assert.Equal(t, 13, sum.Makespan)
	assert.Equal(t, 8, sum.IdleTime)
}

func TestPriorityTieBreaksByAdmissionOrder(t *testing.T) {
	tasks := []Task{
		NewTask(0, "x", 1, 0, 2),
		NewTask(0, "y", 1, 0, 2),
		NewTask(0, "z", 1, 0, 2),
	}
	res, err := NewPriorityScheduler(nil).Run(tasks)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, res.CompletionOrder())
}
