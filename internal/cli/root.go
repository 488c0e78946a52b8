// Package cli defines the rivegolden command line.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/internal/logging"
)

const defaultEnvFile = ".env"

// Options holds flags shared by every command.
type Options struct {
	EnvFile  string
	LogLevel logging.Level

	// vars is the merged environment: the env file overlaid by the process
	// environment. It is filled before any command runs.
	vars map[string]string
}

// Execute builds the root command, runs it with args and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	cmd := newRootCommand(&Options{EnvFile: defaultEnvFile}, logger)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rivegolden",
		Short:         "Render and inspect scene files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			vars, err := loadEnvironment(opts.EnvFile, cmd.Flags().Changed("env-file"))
			if err != nil {
				return err
			}
			opts.vars = vars

			var base baseEnv
			if err := parseEnv(&base, vars); err != nil {
				return err
			}
			level := cmd.Flag("log-level").Value.String()
			if !cmd.Flags().Changed("log-level") && base.LogLevel != "" {
				level = base.LogLevel
			}
			opts.LogLevel = logging.ParseLevel(level)

			logger = logging.NewLogger(cmd.ErrOrStderr(), opts.LogLevel)
			rive.SetLogger(logger)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", opts.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", defaultEnvFile, "Optional .env file with RIVEGOLDEN_* defaults")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newRenderCommand(opts),
		newInspectCommand(opts),
	)
	cmd.SetContext(context.WithValue(context.Background(), loggerKey{}, logger))
	return cmd
}

type loggerKey struct{}

// LoggerFromContext returns the command logger stored in ctx, or a stderr
// logger at info level.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
