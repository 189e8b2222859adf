package report

import (
	"fmt"
	"io"

	"jobsim/internal/sched"
)

// TableSink writes an aligned text table followed by the run summary.
type TableSink struct {
	w io.Writer
}

// NewTableSink creates a TableSink writing to w.
func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

const rowFormat = "%-16s  %6v  %10v  %10v  %7v\n"

// Report implements Sink.
func (s *TableSink) Report(res *sched.Result) error {
	title := "=== " + res.Policy.String()
	if res.Policy == sched.RoundRobin {
		title += fmt.Sprintf(" (quantum %d)", res.Quantum)
	}
	if _, err := fmt.Fprintln(s.w, title+" ==="); err != nil {
		return err
	}
	if len(res.Tasks) == 0 {
		_, err := fmt.Fprintln(s.w, "No tasks.")
		return err
	}

	if _, err := fmt.Fprintf(s.w, rowFormat, "TASK", "START", "COMPLETION", "TURNAROUND", "WAITING"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, rowFormat, "----", "-----", "----------", "----------", "-------"); err != nil {
		return err
	}
	for _, r := range res.Rows() {
		if _, err := fmt.Fprintf(s.w, rowFormat, r.Name, r.Start, r.Completion, r.Turnaround, r.Waiting); err != nil {
			return err
		}
	}

	sum := res.Summary()
	_, err := fmt.Fprintf(s.w, "\navg waiting %.2f, avg turnaround %.2f, makespan %d, idle %d, utilization %.1f%%, throughput %.3f/unit\n",
		sum.AvgWaiting, sum.AvgTurnaround, sum.Makespan, sum.IdleTime, sum.Utilization*100, sum.Throughput)
	return err
}
