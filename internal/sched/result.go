package sched

import (
	"slices"
)

// Slice is one contiguous period a task held the CPU, [Start, End).
type Slice struct {
	Index  int    `yaml:"-"` // position of the task in Result.Tasks
	TaskID TaskID `yaml:"id"`
	Name   string `yaml:"name"`
	Start  int    `yaml:"start"`
	End    int    `yaml:"end"`
}

// Len returns the slice duration.
func (s Slice) Len() int { return s.End - s.Start }

// Result is the outcome of one simulation run.
type Result struct {
	RunID   string
	Policy  Policy
	Quantum int // zero unless Round-Robin

	Tasks  []Task        // finished tasks in arrival order
	Slices []Slice       // execution order
	Events []StatusEvent // full status trace
}

// Row is the reported timing of one task.
type Row struct {
	Name       string `yaml:"name"`
	Start      int    `yaml:"start"`
	Completion int    `yaml:"completion"`
	Turnaround int    `yaml:"turnaround"`
	Waiting    int    `yaml:"waiting"`
}

// Rows returns one row per task in arrival order.
func (r *Result) Rows() []Row {
	rows := make([]Row, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		rows = append(rows, Row{
			Name:       t.Name,
			Start:      t.StartTime,
			Completion: t.CompletionTime,
			Turnaround: t.TurnaroundTime,
			Waiting:    t.WaitingTime,
		})
	}
	return rows
}

// CompletionOrder returns task names ordered by completion time.
func (r *Result) CompletionOrder() []string {
	done := slices.Clone(r.Tasks)
	slices.SortStableFunc(done, func(a, b Task) int {
		return a.CompletionTime - b.CompletionTime
	})
	names := make([]string, len(done))
	for i, t := range done {
		names[i] = t.Name
	}
	return names
}

// SlicesOf returns the execution slices of the named task.
func (r *Result) SlicesOf(name string) []Slice {
	var out []Slice
	for _, s := range r.Slices {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// SlicesAt returns the execution slices of r.Tasks[i].
func (r *Result) SlicesAt(i int) []Slice {
	var out []Slice
	for _, s := range r.Slices {
		if s.Index == i {
			out = append(out, s)
		}
	}
	return out
}

// Summary aggregates the metrics of a run.
type Summary struct {
	Tasks           int     `yaml:"tasks"`
	AvgWaiting      float64 `yaml:"avg_waiting"`
	AvgTurnaround   float64 `yaml:"avg_turnaround"`
	Makespan        int     `yaml:"makespan"`  // completion of the last task
	IdleTime        int     `yaml:"idle_time"` // time in [0, Makespan) with no task running
	Utilization     float64 `yaml:"utilization"`
	Throughput      float64 `yaml:"throughput"` // tasks per time unit
	ContextSwitches int     `yaml:"context_switches"`
}

// Summary computes aggregate metrics. An empty run yields a zero Summary.
func (r *Result) Summary() Summary {
	sum := Summary{Tasks: len(r.Tasks)}
	if len(r.Tasks) == 0 {
		return sum
	}

	busy := 0
	for _, s := range r.Slices {
		busy += s.Len()
	}
	// totals are summed as floats since per-task times may each approach math.MaxInt
	var waiting, turnaround float64
	for _, t := range r.Tasks {
		waiting += float64(t.WaitingTime)
		turnaround += float64(t.TurnaroundTime)
		sum.Makespan = max(sum.Makespan, t.CompletionTime)
	}
	n := float64(len(r.Tasks))
	sum.AvgWaiting = waiting / n
	sum.AvgTurnaround = turnaround / n
	sum.IdleTime = sum.Makespan - busy
	if sum.Makespan > 0 {
		sum.Utilization = float64(busy) / float64(sum.Makespan)
		sum.Throughput = n / float64(sum.Makespan)
	}
	for i := 1; i < len(r.Slices); i++ {
		if r.Slices[i].Index != r.Slices[i-1].Index {
			sum.ContextSwitches++
		}
	}
	return sum
}
