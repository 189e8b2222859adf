package report

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"jobsim/internal/sched"
)

// Replayer logs the status trace of a finished run, one event per tick of a
// TickClock, to animate a simulation for a viewer. It only reads the result,
// so pacing never changes the computed metrics.
type Replayer struct {
	logger   log.FieldLogger
	interval time.Duration
}

// NewReplayer creates a Replayer. A non-positive interval replays without
// delay.
func NewReplayer(logger log.FieldLogger, interval time.Duration) *Replayer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Replayer{logger: logger, interval: interval}
}

// Replay emits every event of res in order. It returns ctx.Err() if the
// context is cancelled before the trace ends.
func (r *Replayer) Replay(ctx context.Context, res *sched.Result) error {
	var clock *TickClock
	if r.interval > 0 {
		clock = NewTickClock(1)
		clock.Start(r.interval)
		defer clock.Stop()
	}

	l := r.logger.WithField("policy", res.Policy.String())
	for _, ev := range res.Events {
		if clock != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-clock.Ch:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		r.emit(l, ev)
	}
	if clock != nil {
		l.WithFields(log.Fields{
			"events": len(res.Events),
			"ticks":  clock.Count(),
		}).Debug("replay finished")
	}
	return nil
}

func (r *Replayer) emit(l log.FieldLogger, ev sched.StatusEvent) {
	fields := log.Fields{
		"tick":  ev.Time,
		"event": ev.Kind.String(),
	}
	if ev.Kind == sched.StatusIdle {
		l.WithFields(fields).Info("cpu idle")
		return
	}
	fields["task"] = ev.Name
	fields["remaining"] = ev.Remaining
	switch ev.Kind {
	case sched.StatusDispatch:
		l.WithFields(fields).Info("executing")
	case sched.StatusFinish:
		l.WithFields(fields).Info("completed")
	default:
		l.WithFields(fields).Debug(ev.Kind.String())
	}
}
