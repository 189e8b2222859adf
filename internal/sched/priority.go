package sched

import (
	log "github.com/sirupsen/logrus"
)

// PriorityScheduler is a non-preemptive scheduler that always picks the
// arrived task with the lowest priority value. A running task is never
// interrupted; arrivals only affect the next selection.
// Ties are broken by admission order.
type PriorityScheduler struct {
	logger log.FieldLogger
}

// NewPriorityScheduler creates a Priority scheduler. A nil logger discards output.
func NewPriorityScheduler(logger log.FieldLogger) *PriorityScheduler {
	return &PriorityScheduler{logger: orDiscard(logger)}
}

// Policy implements Scheduler.
func (s *PriorityScheduler) Policy() Policy { return Priority }

// Run implements Scheduler.
func (s *PriorityScheduler) Run(tasks []Task) (*Result, error) {
	work, err := prepare(tasks)
	if err != nil {
		return nil, err
	}
	tl := newTimeline(Priority, work, s.logger)
	pending := newPendingSet()
	push := func(t *Task) error {
		pending.push(t)
		return nil
	}

	for tl.unarrived() || !pending.empty() {
		if err := tl.admit(push); err != nil {
			return nil, err
		}
		t, ok := pending.popMin()
		if !ok {
			tl.idleUntilNextArrival()
			continue
		}
		tl.logger.WithFields(log.Fields{
			"task":     t.Name,
			"priority": t.Priority,
			"pending":  pending.size(),
		}).Debug("selected")
		tl.execute(t, t.RemainingTime)
		tl.complete(t)
	}
	return tl.result(0), nil
}
