package sched

import (
	log "github.com/sirupsen/logrus"
)

// FIFOScheduler runs tasks to completion in arrival order.
type FIFOScheduler struct {
	logger log.FieldLogger
}

// NewFIFOScheduler creates a FIFO scheduler. A nil logger discards output.
func NewFIFOScheduler(logger log.FieldLogger) *FIFOScheduler {
	return &FIFOScheduler{logger: orDiscard(logger)}
}

// Policy implements Scheduler.
func (s *FIFOScheduler) Policy() Policy { return FIFO }

// Run implements Scheduler.
func (s *FIFOScheduler) Run(tasks []Task) (*Result, error) {
	work, err := prepare(tasks)
	if err != nil {
		return nil, err
	}
	tl := newTimeline(FIFO, work, s.logger)

	for tl.unarrived() {
		t := &tl.tasks[tl.next]
		tl.idleUntil(t.ArrivalTime)
		tl.next++

		tl.execute(t, t.BurstTime)
		tl.complete(t)
	}
	return tl.result(0), nil
}
