// internal/sched/schedulerEvent.go

package sched

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusArrive
	StatusDispatch
	StatusPreempt
	StatusFinish
)

// StatusEvent is recorded on every key action of a simulation.
// Time is the logical clock, not wall-clock time.
type StatusEvent struct {
	Time      int
	Kind      StatusKind
	TaskID    TaskID
	Name      string
	Remaining int // remaining burst after the event
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusIdle:
		return "Idle"
	case StatusArrive:
		return "Arrive"
	case StatusDispatch:
		return "Dispatch"
	case StatusPreempt:
		return "Preempt"
	case StatusFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}
