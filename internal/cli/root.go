// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Root cobra command, persistent flags, config and logger setup.
// Policy:
//   - Command output goes to cmd.OutOrStdout(); logs go to cmd.ErrOrStderr().
//   - Flags override the config file only when explicitly set.

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starlane/config"
)

// ExitError carries a process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// app is the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand assembles the starlane command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "starlane",
		Short:         "Route planning over directed star maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to starlane.yaml (default: $STARLANE_CONFIG or ./starlane.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newRouteCommand(a),
		newDistancesCommand(a),
		newReachCommand(a),
		newDOTCommand(a),
		newGenerateCommand(a),
		newStatsCommand(a),
		newDiffCommand(a),
		newBenchCommand(a),
	)

	return root
}

// Execute runs the command tree with args and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}

	return 0
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, _, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = strings.ToLower(a.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	a.cfg = cfg
	a.logger = newLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	a.logger.Debug("cli: configured", "command", cmd.Name(), "config", a.configPath)

	return nil
}

// newLogger creates an isolated slog.Logger; it never touches the global one.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
