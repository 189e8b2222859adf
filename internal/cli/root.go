package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jobsim/internal/logging"
	"jobsim/internal/sched"
)

// app holds state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	debug      bool
	logLevel   string
	logFormat  string

	cfg    sched.Config
	logger *log.Logger
}

// defaultConfigPath returns the config path, checking JOBSIM_CONFIG first.
func defaultConfigPath() string {
	if p := os.Getenv("JOBSIM_CONFIG"); p != "" {
		return p
	}
	return "jobsim.yml"
}

// NewRootCmd creates the root cobra command for the jobsim CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "jobsim",
		Short: "jobsim: CPU job scheduling simulator",
		Long: "jobsim simulates FIFO, non-preemptive priority and Round-Robin dispatch over a task set\n" +
			"and reports start, completion, turnaround and waiting time per task.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath(), "Config file (or JOBSIM_CONFIG env)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newDemoCmd(a),
	)

	return root
}

// setup loads the config file and builds the logger. Flags given on the
// command line win over config values.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := sched.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") || cfg.LogFormat == "" {
		cfg.LogFormat = a.logFormat
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg
	a.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}
