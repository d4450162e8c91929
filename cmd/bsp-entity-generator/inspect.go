package main

import (
	"github.com/spf13/cobra"

	"bsp-entity-generator/internal/config"
	"bsp-entity-generator/internal/schema"
)

var (
	inspectOverrides string
	inspectJobs      int
	inspectSkipKeys  []string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <map.bsp>...",
	Short: "Print the inferred schemas without generating code",
	Long: `Run the same inference as generate but print the resulting schemas
as a text report: one block per classname with the instance count, and one
line per field with its kind, whether it is required, and how many
instances carried it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectOverrides, "overrides", "", "YAML file pinning field types")
	inspectCmd.Flags().IntVar(&inspectJobs, "jobs", 0, "Concurrent input readers (default one per CPU)")
	inspectCmd.Flags().StringArrayVar(&inspectSkipKeys, "skip-key", nil,
		"Key to exclude from schemas (repeatable, replaces the default list)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	applyInspectFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	set, diags, err := inferSchemas(cfg, args, logger)
	if err != nil {
		return err
	}

	logDiagnostics(logger, diags)

	return schema.WriteReport(cmd.OutOrStdout(), set)
}

func applyInspectFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("overrides") {
		cfg.Overrides = inspectOverrides
	}

	if flags.Changed("jobs") {
		cfg.Jobs = inspectJobs
	}

	if flags.Changed("skip-key") {
		cfg.SkipKeys = inspectSkipKeys
	}
}
