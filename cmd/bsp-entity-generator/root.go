package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bsp-entity-generator/internal/config"
	"bsp-entity-generator/internal/diagnostic"
	"bsp-entity-generator/internal/slogutil"
	"bsp-entity-generator/internal/version"
)

var (
	verbosity  int
	quiet      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "bsp-entity-generator",
	Short: "Generate Go entity structs from compiled map files",
	Long: `bsp-entity-generator reads compiled VBSP map files, infers a typed
schema for every entity classname found in them, and emits Go structs
with matching parse functions.

Types are inferred per value and widened across occurrences; keys absent
from some instances of a classname become optional pointer fields. A YAML
override file pins individual fields to a chosen type when inference is
too eager or too lax.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("bsp-entity-generator version {{.Version}}\n")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Tool config file (default ./bspgen.yaml)")
}

// loadConfig resolves the tool configuration from --config, the working
// directory and the BSPGEN_* environment.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// newLogger builds the stderr logger. The verbosity flags win; the config
// file level applies only when no flag was given.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slogutil.LevelFromVerbosity(verbosity, quiet)
	if verbosity == 0 && !quiet && cfg.Logging.Level != "" {
		level = slogutil.LevelFromString(cfg.Logging.Level)
	}

	return slogutil.NewLogger(os.Stderr, level)
}

// logDiagnostics reports the run's collected findings, infos first, then
// warnings.
func logDiagnostics(logger *slog.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Infos {
		logDiagnostic(logger, slog.LevelInfo, d)
	}

	for _, d := range diags.Warnings {
		logDiagnostic(logger, slog.LevelWarn, d)
	}
}

func logDiagnostic(logger *slog.Logger, level slog.Level, d diagnostic.Diagnostic) {
	args := []any{"code", d.Code}
	if d.Source != "" {
		args = append(args, "source", d.Source)
	}

	if d.Subject != "" {
		args = append(args, "subject", d.Subject)
	}

	logger.Log(context.Background(), level, d.Message, args...)
}
