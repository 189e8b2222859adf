// internal/sched/scheduler.go

package sched

import (
	"io"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Policy selects a dispatch algorithm.
type Policy int

const (
	FIFO Policy = iota
	Priority
	RoundRobin
)

// Policies lists every supported policy in display order.
var Policies = []Policy{FIFO, Priority, RoundRobin}

func (p Policy) String() string {
	switch p {
	case FIFO:
		return "fifo"
	case Priority:
		return "priority"
	case RoundRobin:
		return "round_robin"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "fcfs":
		return FIFO, nil
	case "priority", "prio":
		return Priority, nil
	case "round_robin", "round-robin", "roundrobin", "rr":
		return RoundRobin, nil
	default:
		return 0, errors.Wrapf(ErrUnknownPolicy, "%q", s)
	}
}

// Scheduler runs one dispatch policy over a task set.
// Run never mutates the given tasks; results are reported on private clones.
type Scheduler interface {
	Policy() Policy
	Run(tasks []Task) (*Result, error)
}

// Options configures a Scheduler.
type Options struct {
	Quantum int             // Round-Robin only
	Logger  log.FieldLogger // nil discards
}

// New creates the Scheduler for policy.
func New(policy Policy, opts Options) (Scheduler, error) {
	switch policy {
	case FIFO:
		return NewFIFOScheduler(opts.Logger), nil
	case Priority:
		return NewPriorityScheduler(opts.Logger), nil
	case RoundRobin:
		s, err := NewRoundRobinScheduler(opts.Quantum, opts.Logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "policy %d", int(policy))
	}
}

// Simulate runs policy over tasks in one call.
func Simulate(policy Policy, tasks []Task, opts Options) (*Result, error) {
	s, err := New(policy, opts)
	if err != nil {
		return nil, err
	}
	return s.Run(tasks)
}

// prepare validates tasks and returns clones sorted by arrival time.
// Tasks arriving together keep their input order.
func prepare(tasks []Task) ([]Task, error) {
	if err := ValidateAll(tasks); err != nil {
		return nil, err
	}
	if err := checkHorizon(tasks); err != nil {
		return nil, err
	}
	work := make([]Task, len(tasks))
	for i := range tasks {
		work[i] = tasks[i].Clone()
	}
	slices.SortStableFunc(work, func(a, b Task) int {
		return a.ArrivalTime - b.ArrivalTime
	})
	return work, nil
}

// checkHorizon rejects task sets whose logical clock could pass math.MaxInt.
// The clock never exceeds the latest arrival plus the sum of all bursts.
func checkHorizon(tasks []Task) error {
	horizon := 0
	for _, t := range tasks {
		horizon = max(horizon, t.ArrivalTime)
	}
	for _, t := range tasks {
		if t.BurstTime > math.MaxInt-horizon {
			return errors.Wrapf(ErrInvalidTask, "%s: clock would overflow past the latest arrival %d", t.Name, horizon)
		}
		horizon += t.BurstTime
	}
	return nil
}

func discardLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func orDiscard(logger log.FieldLogger) log.FieldLogger {
	if logger == nil {
		return discardLogger()
	}
	return logger
}

// timeline is the event-time bookkeeping shared by all policies: the logical
// clock, the arrival cursor over the sorted tasks, executed slices and the
// status trace.
type timeline struct {
	policy Policy
	now    int
	tasks  []Task
	index  map[*Task]int
	next   int // index of the first task not yet admitted
	seen   int // index of the first task whose arrival is not yet traced
	slices []Slice
	events []StatusEvent
	logger log.FieldLogger
}

func newTimeline(policy Policy, tasks []Task, logger log.FieldLogger) *timeline {
	index := make(map[*Task]int, len(tasks))
	for i := range tasks {
		index[&tasks[i]] = i
	}
	return &timeline{
		policy: policy,
		tasks:  tasks,
		index:  index,
		logger: logger.WithField("policy", policy.String()),
	}
}

// unarrived reports whether some task has not been admitted yet.
func (tl *timeline) unarrived() bool { return tl.next < len(tl.tasks) }

// admit hands every task with arrival <= now to push, in arrival order.
func (tl *timeline) admit(push func(*Task) error) error {
	tl.traceArrivals()
	for tl.unarrived() && tl.tasks[tl.next].ArrivalTime <= tl.now {
		t := &tl.tasks[tl.next]
		tl.next++
		if err := push(t); err != nil {
			return err
		}
	}
	return nil
}

// idleUntilNextArrival jumps the clock over a gap with nothing ready.
func (tl *timeline) idleUntilNextArrival() {
	tl.idleUntil(tl.tasks[tl.next].ArrivalTime)
}

func (tl *timeline) idleUntil(at int) {
	if tl.now < at {
		tl.events = append(tl.events, StatusEvent{Time: tl.now, Kind: StatusIdle})
		tl.logger.WithFields(log.Fields{"from": tl.now, "to": at}).Debug("cpu idle")
		tl.now = at
	}
	tl.traceArrivals()
}

// traceArrivals records an Arrive event, stamped with the arrival time, for
// every task the clock has reached. Admission into a policy's queue may
// happen later.
func (tl *timeline) traceArrivals() {
	for tl.seen < len(tl.tasks) && tl.tasks[tl.seen].ArrivalTime <= tl.now {
		t := &tl.tasks[tl.seen]
		tl.seen++
		tl.events = append(tl.events, StatusEvent{
			Time:      t.ArrivalTime,
			Kind:      StatusArrive,
			TaskID:    t.ID,
			Name:      t.Name,
			Remaining: t.RemainingTime,
		})
	}
}

// execute runs t for n time units starting now.
func (tl *timeline) execute(t *Task, n int) {
	if t.StartTime == Unset {
		t.StartTime = tl.now
	}
	tl.record(StatusDispatch, t)
	tl.logger.WithFields(log.Fields{
		"task":  t.Name,
		"time":  tl.now,
		"slice": n,
	}).Debug("executing")

	start := tl.now
	tl.now += n
	t.RemainingTime -= n
	tl.slices = append(tl.slices, Slice{
		Index:  tl.index[t],
		TaskID: t.ID,
		Name:   t.Name,
		Start:  start,
		End:    tl.now,
	})
	tl.traceArrivals()
}

func (tl *timeline) preempt(t *Task) {
	tl.record(StatusPreempt, t)
}

func (tl *timeline) complete(t *Task) {
	t.finish(tl.now)
	tl.record(StatusFinish, t)
	tl.logger.WithFields(log.Fields{
		"task": t.Name,
		"time": tl.now,
	}).Debug("completed")
}

func (tl *timeline) record(kind StatusKind, t *Task) {
	tl.events = append(tl.events, StatusEvent{
		Time:      tl.now,
		Kind:      kind,
		TaskID:    t.ID,
		Name:      t.Name,
		Remaining: t.RemainingTime,
	})
}

func (tl *timeline) result(quantum int) *Result {
	return &Result{
		RunID:   uuid.NewString(),
		Policy:  tl.policy,
		Quantum: quantum,
		Tasks:   tl.tasks,
		Slices:  tl.slices,
		Events:  tl.events,
	}
}
