// Package report renders finished simulation results. Every sink consumes a
// *sched.Result after the run; none of them feed back into the scheduler.
package report

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"jobsim/internal/sched"
)

// Sink consumes the result of one simulation run.
type Sink interface {
	Report(res *sched.Result) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(res *sched.Result) error

// Report implements Sink.
func (f SinkFunc) Report(res *sched.Result) error { return f(res) }

// Formats lists the names accepted by NewSink.
var Formats = []string{"table", "csv", "yaml", "log"}

// NewSink returns the sink for the named output format.
func NewSink(format string, w io.Writer, logger log.FieldLogger) (Sink, error) {
	switch strings.ToLower(format) {
	case "", "table":
		return NewTableSink(w), nil
	case "csv":
		return NewCSVSink(w), nil
	case "yaml", "yml":
		return NewYAMLSink(w), nil
	case "log":
		return NewLogSink(logger), nil
	default:
		return nil, errors.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Multi reports to every sink in order and stops at the first failure.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(res *sched.Result) error {
		for _, s := range sinks {
			if err := s.Report(res); err != nil {
				return err
			}
		}
		return nil
	})
}
