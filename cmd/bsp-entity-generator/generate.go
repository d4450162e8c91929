package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"bsp-entity-generator/internal/config"
	"bsp-entity-generator/internal/diagnostic"
	"bsp-entity-generator/internal/gen"
	"bsp-entity-generator/internal/override"
	"bsp-entity-generator/internal/pipeline"
	"bsp-entity-generator/internal/schema"
)

var (
	generateOutput    string
	generatePackage   string
	generateOverrides string
	generateJobs      int
	generateSkipKeys  []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] <map.bsp>...",
	Short: "Infer entity schemas and emit Go source",
	Long: `Infer entity schemas from one or more compiled maps and emit Go
source for them.

Every classname becomes one struct; every key becomes a field typed by
the widest kind its values needed across all inputs. Inputs merge in
argument order, so struct and field order is reproducible for a given
command line. Files ending in .gz are decompressed transparently.

Any unreadable or malformed input aborts the run before code is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default stdout)")
	generateCmd.Flags().StringVar(&generatePackage, "package", "entities", "Package name of the generated code")
	generateCmd.Flags().StringVar(&generateOverrides, "overrides", "", "YAML file pinning field types")
	generateCmd.Flags().IntVar(&generateJobs, "jobs", 0, "Concurrent input readers (default one per CPU)")
	generateCmd.Flags().StringArrayVar(&generateSkipKeys, "skip-key", nil,
		"Key to exclude from schemas (repeatable, replaces the default list)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	applyGenerateFlags(cmd, cfg)

	// "-" is the conventional stdout spelling.
	if cfg.Output == "-" {
		cfg.Output = ""
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	set, diags, err := inferSchemas(cfg, args, logger)
	if err != nil {
		return err
	}

	logDiagnostics(logger, diags)

	genConfig := gen.DefaultConfig()
	genConfig.PackageName = cfg.Package
	genConfig.OutputDir = cfg.Output

	files, err := gen.NewGenerator(genConfig).Generate(set)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return gen.WriteTo(cmd.OutOrStdout(), files)
	}

	if err := gen.WriteFiles(files, cfg.Output); err != nil {
		return err
	}

	logger.Info("Wrote generated code", "dir", cfg.Output, "classes", set.Len())

	return nil
}

// applyGenerateFlags lets explicitly set flags win over the config file
// and environment.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("output") {
		cfg.Output = generateOutput
	}

	if flags.Changed("package") {
		cfg.Package = generatePackage
	}

	if flags.Changed("overrides") {
		cfg.Overrides = generateOverrides
	}

	if flags.Changed("jobs") {
		cfg.Jobs = generateJobs
	}

	if flags.Changed("skip-key") {
		cfg.SkipKeys = generateSkipKeys
	}
}

// inferSchemas runs the pipeline over the inputs and applies the override
// file, if configured. Shared by generate and inspect.
func inferSchemas(cfg *config.Config, inputs []string, logger *slog.Logger) (*schema.SchemaSet, *diagnostic.Diagnostics, error) {
	set, diags, err := pipeline.Run(pipeline.Options{
		Inputs:    inputs,
		Jobs:      cfg.Jobs,
		SkipKeys:  cfg.SkipKeys,
		CacheSize: cfg.CacheSize,
		Logger:    logger,
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg.Overrides != "" {
		overrides, err := override.LoadFile(cfg.Overrides)
		if err != nil {
			return nil, nil, err
		}

		diags.Merge(override.Apply(set, overrides, cfg.Overrides))
	}

	return set, diags, nil
}
