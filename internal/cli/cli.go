package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/framectx/internal/app"
	"gopkg.in/yaml.v3"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// fileConfig is the YAML config file layout. Flags given on the command line
// override its values.
type fileConfig struct {
	Scenario  string `yaml:"scenario"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type flags struct {
	scenario   string
	logLevel   string
	logFormat  string
	configFile string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		f      flags
		config *app.Config
	)
	cmd := &cobra.Command{
		Use:   "framectx [flags] [SCENARIO_PATH]",
		Short: "framectx - replays runner events and reports debugger stack frames.",
		Long: `framectx replays the events of a test run against a workspace of parsed
source files and prints the stack frames, with their source locations,
every time a line breakpoint is hit.

Arguments:
  SCENARIO_PATH
    Path to a single .hcl file or a directory containing .hcl files.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			cfg, err := resolve(cmd, f, positional)
			if err != nil {
				return err
			}
			if cfg.ScenarioPath == "" {
				slog.Debug("No scenario path provided, printing usage and exiting.")
				return cmd.Usage()
			}
			config, err = app.NewConfig(cfg)
			return err
		},
	}
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "", "Path to the scenario file or directory.")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	cmd.Flags().StringVar(&f.configFile, "config", "", "Path to a YAML config file.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if config == nil {
		// Help was requested or no scenario was given.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// resolve merges the config file with the flags. A flag wins over the file
// only when it was set explicitly.
func resolve(cmd *cobra.Command, f flags, positional []string) (app.Config, error) {
	cfg := app.Config{
		ScenarioPath: f.scenario,
		LogLevel:     strings.ToLower(f.logLevel),
		LogFormat:    strings.ToLower(f.logFormat),
	}
	if cfg.ScenarioPath == "" && len(positional) > 0 {
		cfg.ScenarioPath = positional[0]
	}

	if f.configFile == "" {
		return cfg, nil
	}
	fc, err := readConfigFile(f.configFile)
	if err != nil {
		return cfg, err
	}
	if cfg.ScenarioPath == "" {
		cfg.ScenarioPath = fc.Scenario
	}
	if !cmd.Flags().Changed("log-level") && fc.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if !cmd.Flags().Changed("log-format") && fc.LogFormat != "" {
		cfg.LogFormat = strings.ToLower(fc.LogFormat)
	}
	return cfg, nil
}

func readConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if fc == (fileConfig{}) {
		return nil, errors.New("config file " + path + " is empty")
	}
	return &fc, nil
}
