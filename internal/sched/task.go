package sched

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Unset marks a run-state time that has not been recorded yet.
const Unset = -1

// TaskID optionally identifies a task. It does not have to be unique.
type TaskID uint64

// Task represents one simulated job.
type Task struct {
	ID          TaskID
	Name        string
	BurstTime   int // total logical CPU time required
	ArrivalTime int // logical time the task becomes eligible
	Priority    int // lower is more urgent, only used by the Priority policy

	// run-state, written by exactly one simulation
	RemainingTime  int
	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
}

// NewTask creates a task with fresh run-state.
func NewTask(id TaskID, name string, burst, arrival, priority int) Task {
	return Task{
		ID:             id,
		Name:           name,
		BurstTime:      burst,
		ArrivalTime:    arrival,
		Priority:       priority,
		RemainingTime:  burst,
		StartTime:      Unset,
		CompletionTime: Unset,
	}
}

// Clone copies the request parameters and resets the run-state.
func (t Task) Clone() Task {
	return NewTask(t.ID, t.Name, t.BurstTime, t.ArrivalTime, t.Priority)
}

// Done reports whether the whole burst has been consumed.
func (t *Task) Done() bool {
	return t.RemainingTime == 0 && t.CompletionTime != Unset
}

// Validate checks the request parameters.
func (t Task) Validate() error {
	switch {
	case t.Name == "":
		return errors.Wrap(ErrInvalidTask, "empty name")
	case t.BurstTime <= 0:
		return errors.Wrapf(ErrInvalidTask, "%s: burst time %d must be positive", t.Name, t.BurstTime)
	case t.ArrivalTime < 0:
		return errors.Wrapf(ErrInvalidTask, "%s: arrival time %d is negative", t.Name, t.ArrivalTime)
	case t.Priority < 0:
		return errors.Wrapf(ErrInvalidTask, "%s: priority %d is negative", t.Name, t.Priority)
	}
	return nil
}

// ValidateAll validates every task and combines all failures.
func ValidateAll(tasks []Task) error {
	var err error
	for i := range tasks {
		if verr := tasks[i].Validate(); verr != nil {
			err = multierr.Append(err, errors.Wrapf(verr, "task #%d", i))
		}
	}
	return err
}

// finish marks the task terminal at time now and derives its metrics.
func (t *Task) finish(now int) {
	t.CompletionTime = now
	t.TurnaroundTime = t.CompletionTime - t.ArrivalTime
	t.WaitingTime = t.TurnaroundTime - t.BurstTime
}
