package report

import (
	"bytes"
	"fmt"
	"io"

	"jobsim/internal/sched"
)

// GanttWidth is the maximum number of timeline columns Gantt draws.
const GanttWidth = 100

// Gantt draws one line per task with a '#' for every column in which it ran
// and a '.' for every column it spent waiting after arrival. Runs longer
// than GanttWidth time units are scaled so one column covers several units.
func Gantt(w io.Writer, res *sched.Result) error {
	end := res.Summary().Makespan
	if end == 0 {
		return nil
	}

	unit := end / GanttWidth
	if end%GanttWidth != 0 {
		unit++
	}
	cols := end / unit
	if end%unit != 0 {
		cols++
	}

	width := 0
	for _, t := range res.Tasks {
		width = max(width, len(t.Name))
	}

	for i := range res.Tasks {
		t := &res.Tasks[i]
		line := bytes.Repeat([]byte{' '}, cols)
		fill(line, t.ArrivalTime, t.CompletionTime, unit, '.')
		for _, s := range res.SlicesAt(i) {
			fill(line, s.Start, s.End, unit, '#')
		}
		if _, err := fmt.Fprintf(w, "%-*s |%s|\n", width, t.Name, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%-*s  0%*d\n", width, "", cols, end); err != nil {
		return err
	}
	if unit > 1 {
		_, err := fmt.Fprintf(w, "%-*s  (1 column = %d time units)\n", width, "", unit)
		return err
	}
	return nil
}

// fill marks every column overlapping [from, to).
func fill(line []byte, from, to, unit int, c byte) {
	if from >= to {
		return
	}
	for col := from / unit; col <= (to-1)/unit && col < len(line); col++ {
		line[col] = c
	}
}
