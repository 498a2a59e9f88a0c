// =============================================================================
// Overdue Report Compiler - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Overdue Report Compiler CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   overdue-compiler compile   - Compile raw extracts into the cumulative report
//   overdue-compiler validate  - Check raw extracts without writing anything
//   overdue-compiler version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/                 : CLI command definitions (Cobra)
//   - internal/aggregator  : The compile run (discover, decide, read, sort, write, purge)
//   - internal/csvparser   : CSV reading and number formatting
//   - internal/config      : Defaults, YAML file, .env and environment overrides
//   - internal/logging     : Rotating log file
//   - pkg/utils            : File system helpers
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/overdue-compiler/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
