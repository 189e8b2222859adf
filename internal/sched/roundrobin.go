package sched

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RoundRobinScheduler is a preemptive scheduler giving each ready task at
// most one quantum of CPU time per turn.
//
// Tasks that arrive while a slice runs, including one arriving exactly when
// it ends, are queued ahead of the preempted task.
type RoundRobinScheduler struct {
	quantum int
	logger  log.FieldLogger
}

// NewRoundRobinScheduler creates a Round-Robin scheduler. A nil logger
// discards output.
func NewRoundRobinScheduler(quantum int, logger log.FieldLogger) (*RoundRobinScheduler, error) {
	if quantum <= 0 {
		return nil, errors.Wrapf(ErrInvalidQuantum, "got %d", quantum)
	}
	return &RoundRobinScheduler{quantum: quantum, logger: orDiscard(logger)}, nil
}

// Policy implements Scheduler.
func (s *RoundRobinScheduler) Policy() Policy { return RoundRobin }

// Quantum returns the maximum slice length.
func (s *RoundRobinScheduler) Quantum() int { return s.quantum }

// Run implements Scheduler.
func (s *RoundRobinScheduler) Run(tasks []Task) (*Result, error) {
	work, err := prepare(tasks)
	if err != nil {
		return nil, err
	}
	tl := newTimeline(RoundRobin, work, s.logger)
	// at most one preempted task plus every task not yet finished
	queue := NewReadyQueue(2 * len(work))

	for tl.unarrived() || !queue.Empty() {
		if err := tl.admit(queue.Enqueue); err != nil {
			return nil, errors.Wrap(err, "admit")
		}
		t, ok := queue.Dequeue()
		if !ok {
			tl.idleUntilNextArrival()
			continue
		}

		tl.execute(t, min(t.RemainingTime, s.quantum))
		if err := tl.admit(queue.Enqueue); err != nil {
			return nil, errors.Wrap(err, "admit")
		}

		if t.RemainingTime > 0 {
			tl.preempt(t)
			if err := queue.Enqueue(t); err != nil {
				return nil, errors.Wrap(err, "requeue")
			}
			continue
		}
		tl.complete(t)
	}
	return tl.result(s.quantum), nil
}
