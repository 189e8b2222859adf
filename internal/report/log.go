package report

import (
	log "github.com/sirupsen/logrus"

	"jobsim/internal/sched"
)

// LogSink emits one log entry per task, the line-oriented form of the table.
type LogSink struct {
	logger log.FieldLogger
}

// NewLogSink creates a LogSink. A nil logger uses the standard logger.
func NewLogSink(logger log.FieldLogger) *LogSink {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogSink{logger: logger}
}

// Report implements Sink.
func (s *LogSink) Report(res *sched.Result) error {
	l := s.logger.WithFields(log.Fields{
		"run_id": res.RunID,
		"policy": res.Policy.String(),
	})
	for _, r := range res.Rows() {
		l.WithFields(log.Fields{
			"task":       r.Name,
			"start":      r.Start,
			"completion": r.Completion,
			"turnaround": r.Turnaround,
			"waiting":    r.Waiting,
		}).Info("task completed")
	}

	sum := res.Summary()
	l.WithFields(log.Fields{
		"tasks":          sum.Tasks,
		"avg_waiting":    sum.AvgWaiting,
		"avg_turnaround": sum.AvgTurnaround,
		"makespan":       sum.Makespan,
	}).Info("all tasks completed")
	return nil
}
