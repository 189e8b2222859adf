package taskset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"jobsim/internal/sched"
)

const sample = `
policy: rr
quantum: 3
tasks:
  - id: 1
    name: A
    burst: 10
    arrival: 0
    priority: 2
  - id: 2
    name: B
    burst: 5
    arrival: 2
    priority: 0
  - name: C
    burst: 8
    arrival: 4
`

func TestParse(t *testing.T) {
	f, tasks, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "rr", f.Policy)
	assert.Equal(t, 3, f.Quantum)
	require.Len(t, tasks, 3)

	assert.Equal(t, sched.NewTask(1, "A", 10, 0, 2), tasks[0])
	assert.Equal(t, 0, tasks[1].Priority, "explicit zero priority is kept")
	assert.Equal(t, DefaultPriority, tasks[2].Priority)
	assert.Equal(t, sched.TaskID(0), tasks[2].ID)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	_, tasks, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	_, _, err = Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidTasks(t *testing.T) {
	_, _, err := Parse([]byte(`
tasks:
  - name: A
    burst: 0
    arrival: 0
  - name: ""
    burst: 1
    arrival: 0
`))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.True(t, sched.IsValidation(err))

	_, _, err = Parse([]byte("tasks: [\n"))
	assert.Error(t, err)
}

func TestParseSpec(t *testing.T) {
	task, err := ParseSpec("build:7:3:1")
	require.NoError(t, err)
	assert.Equal(t, sched.NewTask(0, "build", 7, 3, 1), task)

	task, err = ParseSpec(" lint : 2 : 0 ")
	require.NoError(t, err)
	assert.Equal(t, "lint", task.Name)
	assert.Equal(t, DefaultPriority, task.Priority)
}

func TestParseSpecErrors(t *testing.T) {
	for _, spec := range []string{
		"",
		"a:1",
		"a:1:2:3:4",
		"a:x:0",
		"a:1:zero",
		"a:1:0:high",
		":1:0",
		"a:-1:0",
		"a:1:-1",
		"a:1:0:-2",
	} {
		_, err := ParseSpec(spec)
		require.Error(t, err, spec)
		assert.Equal(t, sched.ErrInvalidTask, errors.Cause(err), spec)
	}
}

func TestParseSpecsAggregates(t *testing.T) {
	tasks, err := ParseSpecs([]string{"a:1:0", "b:x:0", "c:0:0"})
	require.Error(t, err)
	assert.Nil(t, tasks)
	assert.Len(t, multierr.Errors(err), 2)

	tasks, err = ParseSpecs([]string{"a:1:0", "b:2:1:4"})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestDemo(t *testing.T) {
	tasks := Demo()
	require.Len(t, tasks, 3)
	assert.NoError(t, sched.ValidateAll(tasks))
}

func TestLoadSampleMatchesDemo(t *testing.T) {
	f, tasks, err := Load(filepath.Join("..", "..", "testdata", "sample.yml"))
	require.NoError(t, err)
	assert.Equal(t, "round_robin", f.Policy)
	assert.Equal(t, 3, f.Quantum)
	assert.Equal(t, Demo(), tasks)
}
