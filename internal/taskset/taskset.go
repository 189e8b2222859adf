// Package taskset builds task sets from YAML files and inline definitions.
package taskset

import (
	"os"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"jobsim/internal/sched"
)

// DefaultPriority is used when a definition leaves the priority out.
const DefaultPriority = 10

// Entry mirrors one task in a task-set file.
type Entry struct {
	ID       uint64 `yaml:"id"`
	Name     string `yaml:"name"`
	Burst    int    `yaml:"burst"`
	Arrival  int    `yaml:"arrival"`
	Priority *int   `yaml:"priority"`
}

// File mirrors a task-set file. Policy and Quantum are optional and only
// apply when the caller did not choose them explicitly.
type File struct {
	Policy  string  `yaml:"policy"`
	Quantum int     `yaml:"quantum"`
	Tasks   []Entry `yaml:"tasks"`
}

// Task converts the entry into a sched.Task.
func (e Entry) Task() sched.Task {
	prio := DefaultPriority
	if e.Priority != nil {
		prio = *e.Priority
	}
	return sched.NewTask(sched.TaskID(e.ID), e.Name, e.Burst, e.Arrival, prio)
}

// Load reads and validates a task-set file.
func Load(path string) (*File, []sched.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read task set %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a task-set document.
func Parse(data []byte) (*File, []sched.Task, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, errors.Wrap(err, "parse task set")
	}
	tasks := make([]sched.Task, 0, len(f.Tasks))
	for _, e := range f.Tasks {
		tasks = append(tasks, e.Task())
	}
	if err := sched.ValidateAll(tasks); err != nil {
		return nil, nil, err
	}
	return &f, tasks, nil
}

// ParseSpec parses an inline definition "name:burst:arrival[:priority]".
// Tasks parsed this way get no ID.
func ParseSpec(spec string) (sched.Task, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return sched.Task{}, errors.Wrapf(sched.ErrInvalidTask, "%q: want name:burst:arrival[:priority]", spec)
	}

	name := strings.TrimSpace(parts[0])
	burst, err := field(spec, "burst", parts[1])
	if err != nil {
		return sched.Task{}, err
	}
	arrival, err := field(spec, "arrival", parts[2])
	if err != nil {
		return sched.Task{}, err
	}
	prio := DefaultPriority
	if len(parts) == 4 {
		if prio, err = field(spec, "priority", parts[3]); err != nil {
			return sched.Task{}, err
		}
	}

	t := sched.NewTask(0, name, burst, arrival, prio)
	if err := t.Validate(); err != nil {
		return sched.Task{}, err
	}
	return t, nil
}

// ParseSpecs parses every definition and reports all failures together.
func ParseSpecs(specs []string) ([]sched.Task, error) {
	var (
		tasks []sched.Task
		errs  error
	)
	for _, s := range specs {
		t, err := ParseSpec(s)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		tasks = append(tasks, t)
	}
	if errs != nil {
		return nil, errs
	}
	return tasks, nil
}

func field(spec, name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(sched.ErrInvalidTask, "%q: %s %q is not a number", spec, name, raw)
	}
	return v, nil
}

// Demo returns the three-task sample set.
func Demo() []sched.Task {
	return []sched.Task{
		sched.NewTask(1, "Task A", 10, 0, 2),
		sched.NewTask(2, "Task B", 5, 2, 1),
		sched.NewTask(3, "Task C", 8, 4, 3),
	}
}
