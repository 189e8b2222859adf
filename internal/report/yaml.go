package report

import (
	"io"

	yaml "github.com/goccy/go-yaml"

	"jobsim/internal/sched"
)

// document is the YAML shape of a result.
type document struct {
	RunID   string        `yaml:"run_id"`
	Policy  string        `yaml:"policy"`
	Quantum int           `yaml:"quantum,omitempty"`
	Rows    []sched.Row   `yaml:"tasks"`
	Slices  []sched.Slice `yaml:"slices"`
	Summary sched.Summary `yaml:"summary"`
}

// YAMLSink writes the result as a YAML document.
type YAMLSink struct {
	w io.Writer
}

// NewYAMLSink creates a YAMLSink writing to w.
func NewYAMLSink(w io.Writer) *YAMLSink {
	return &YAMLSink{w: w}
}

// Report implements Sink.
func (s *YAMLSink) Report(res *sched.Result) error {
	data, err := yaml.Marshal(document{
		RunID:   res.RunID,
		Policy:  res.Policy.String(),
		Quantum: res.Quantum,
		Rows:    res.Rows(),
		Slices:  res.Slices,
		Summary: res.Summary(),
	})
	if err != nil {
		return err
	}
	_, err = s.w.Write(append([]byte("---\n"), data...))
	return err
}
