package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"jobsim/internal/sched"
)

var rowHeader = []string{"task", "start", "completion", "turnaround", "waiting"}

// CSVSink writes one CSV record per task.
type CSVSink struct {
	w io.Writer
}

// NewCSVSink creates a CSVSink writing to w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: w}
}

// Report implements Sink.
func (s *CSVSink) Report(res *sched.Result) error {
	w := csv.NewWriter(s.w)
	if err := w.Write(rowHeader); err != nil {
		return err
	}
	for _, r := range res.Rows() {
		rec := []string{
			r.Name,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.Completion),
			strconv.Itoa(r.Turnaround),
			strconv.Itoa(r.Waiting),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteEvents writes the status trace of res as CSV, one record per event.
func WriteEvents(out io.Writer, res *sched.Result) error {
	w := csv.NewWriter(out)

	// write header
	if err := w.Write([]string{"run_id", "policy", "tick", "event", "task_id", "task", "remaining"}); err != nil {
		return err
	}
	for _, ev := range res.Events {
		rec := []string{
			res.RunID,
			res.Policy.String(),
			strconv.Itoa(ev.Time),
			ev.Kind.String(),
			strconv.FormatUint(uint64(ev.TaskID), 10),
			ev.Name,
			strconv.Itoa(ev.Remaining),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
