package cli

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jobsim/internal/report"
	"jobsim/internal/sched"
	"jobsim/internal/taskset"
)

type runFlags struct {
	policy  string
	quantum int
	file    string
	tasks   []string
	output  string
	events  string
	gantt   bool
	pace    time.Duration
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one scheduling policy",
		Example: "  jobsim run --policy rr --quantum 3 --task A:10:0:2 --task B:5:2:1 --task C:8:4:3\n" +
			"  jobsim run --file tasks.yml --output yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, policy, quantum, err := a.resolve(cmd, f)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				a.logger.Warn("no tasks given, add some with --task or --file")
			}

			res, err := sched.Simulate(policy, tasks, sched.Options{Quantum: quantum, Logger: a.logger})
			if err != nil {
				return errors.Wrapf(err, "simulate %s", policy)
			}
			a.logger.WithField("run_id", res.RunID).Debug("simulation finished")
			return a.emit(cmd, f, res)
		},
	}

	cmd.Flags().StringVarP(&f.policy, "policy", "p", "", "Scheduling policy (fifo, priority, rr); defaults to the config value")
	cmd.Flags().IntVarP(&f.quantum, "quantum", "q", 0, "Round-Robin time quantum; defaults to the config value")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML task-set file")
	cmd.Flags().StringArrayVarP(&f.tasks, "task", "t", nil, "Inline task name:burst:arrival[:priority] (repeatable)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "table", "Output format (table, csv, yaml, log)")
	cmd.Flags().StringVar(&f.events, "events", "", "Write the event trace as CSV to this file")
	cmd.Flags().BoolVar(&f.gantt, "gantt", false, "Draw a timeline after the table")
	cmd.Flags().DurationVar(&f.pace, "pace", 0, "Replay the event trace with this delay per event (e.g. 300ms)")
	return cmd
}

// resolve gathers the task set and decides policy and quantum. Precedence:
// flags, then the task-set file, then the config file.
func (a *app) resolve(cmd *cobra.Command, f *runFlags) ([]sched.Task, sched.Policy, int, error) {
	policyName := a.cfg.Policy
	quantum := a.cfg.Quantum

	var tasks []sched.Task
	if f.file != "" {
		file, fromFile, err := taskset.Load(f.file)
		if err != nil {
			return nil, 0, 0, err
		}
		tasks = append(tasks, fromFile...)
		if file.Policy != "" {
			policyName = file.Policy
		}
		if file.Quantum > 0 {
			quantum = file.Quantum
		}
	}
	inline, err := taskset.ParseSpecs(f.tasks)
	if err != nil {
		return nil, 0, 0, err
	}
	tasks = append(tasks, inline...)

	if cmd.Flags().Changed("policy") {
		policyName = f.policy
	}
	if cmd.Flags().Changed("quantum") {
		quantum = f.quantum
	}
	policy, err := sched.ParsePolicy(policyName)
	if err != nil {
		return nil, 0, 0, err
	}
	return tasks, policy, quantum, nil
}

// emit hands the result to the selected sinks.
func (a *app) emit(cmd *cobra.Command, f *runFlags, res *sched.Result) error {
	out := cmd.OutOrStdout()

	pace := f.pace
	if !cmd.Flags().Changed("pace") && a.cfg.PaceMS > 0 {
		pace = time.Duration(a.cfg.PaceMS) * time.Millisecond
	}
	if pace > 0 {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := report.NewReplayer(a.logger, pace).Replay(ctx, res); err != nil {
			return err
		}
	}

	sink, err := report.NewSink(f.output, out, a.logger)
	if err != nil {
		return err
	}
	if f.gantt {
		sink = report.Multi(sink, report.SinkFunc(func(res *sched.Result) error {
			return report.Gantt(out, res)
		}))
	}
	if err := sink.Report(res); err != nil {
		return errors.Wrap(err, "write report")
	}

	if f.events != "" {
		if err := writeEventFile(f.events, res); err != nil {
			return err
		}
		a.logger.WithField("path", f.events).Info("event trace written")
	}
	return nil
}

// writeEventFile writes the event trace of res to path as CSV.
func writeEventFile(path string, res *sched.Result) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create event log")
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close event log")
		}
	}()
	if err := report.WriteEvents(fh, res); err != nil {
		return errors.Wrap(err, "write event log")
	}
	return nil
}
