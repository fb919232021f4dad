// Package cli implements the seqkit command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seqkit/internal/config"
	"seqkit/internal/logging"
)

// RootOptions holds global flags and the resolved configuration for all commands.
type RootOptions struct {
	ConfigPath string
	Debug      bool
	Output     string
	LogLevel   string
	Workers    int

	Config config.Config
}

// NewRootCmd creates the root command for the seqkit CLI.
func NewRootCmd(version string) *cobra.Command {
	return NewRootCmdWithEnv(version, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(version string, lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "seqkit",
		Short:         "Sequence helpers for YAML and JSON lists",
		Long:          "seqkit applies order-preserving list operations to YAML or JSON documents read from files or stdin.",
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd, lookupEnv)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "config file")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "output format (yaml|json)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().IntVar(&opts.Workers, "workers", 0, "goroutines for parallel resampling (0 = GOMAXPROCS)")

	cmd.AddCommand(
		newDedupeCmd(opts),
		newUpdateCmd(opts),
		newDifferenceCmd(opts),
		newFlattenCmd(opts),
		newBatchCmd(opts),
		newPairsCmd(opts),
		newCompactCmd(opts),
		newStretchCmd(opts),
		newEvenCmd(opts),
		newTuplifyCmd(opts),
		newCheckTypeCmd(opts),
	)
	return cmd
}

// resolve layers defaults, config file, environment and flags, in that order,
// then installs the logger in the command context.
func (o *RootOptions) resolve(cmd *cobra.Command, lookupEnv func(string) (string, bool)) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading config", err)
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return WrapExitError(ExitCommandError, "reading environment", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.Output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = o.Workers
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	o.Config = cfg

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, o.Debug)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	logger.Debug().
		Str("config", o.ConfigPath).
		Str("output", cfg.Output).
		Int("workers", cfg.Workers).
		Msg("configuration resolved")
	return nil
}

// loggerFrom returns the logger installed by resolve.
func loggerFrom(cmd *cobra.Command) *zerolog.Logger {
	return zerolog.Ctx(cmd.Context())
}

// encoderFor returns an encoder for the command's stdout in the resolved format.
func (o *RootOptions) encoderFor(cmd *cobra.Command) *Encoder {
	return NewEncoder(o.Config.Output, cmd.OutOrStdout())
}

// emit writes docs with a fresh encoder and flushes it.
func (o *RootOptions) emit(cmd *cobra.Command, docs ...any) error {
	enc := o.encoderFor(cmd)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return WrapExitError(ExitFailure, "writing output", err)
		}
	}
	if err := enc.Close(); err != nil {
		return WrapExitError(ExitFailure, "writing output", err)
	}
	return nil
}

const rootCmdExample = `  # Keep the last occurrence of every element
  echo '[1, 2, 1, 3, 2]' | seqkit dedupe

  # Merge two lists, removing from the first what the second carries
  seqkit update a.yaml b.yaml

  # Group consecutive records by a field
  seqkit batch --field region records.yaml -o json

  # Stretch a list to 100 elements using 4 workers
  seqkit stretch --length 100 --workers 4 samples.yaml`
