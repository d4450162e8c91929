// Package main provides the CLI entrypoint for bsp-entity-generator.
//
// bsp-entity-generator is a codegen tool that:
//   - Reads compiled VBSP map files and extracts their entity lumps
//   - Infers a typed schema per classname across all inputs
//   - Lets humans pin field types via YAML overrides
//   - Generates entity structs with matching parse functions
package main

import (
	"log/slog"
	"os"

	"bsp-entity-generator/internal/slogutil"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := slogutil.NewLogger(os.Stderr, slog.LevelError)
		logger.Error("Command execution failed", "error", err.Error())
		os.Exit(1)
	}
}
