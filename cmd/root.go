// =============================================================================
// Overdue Report Compiler - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (overdue-compiler)
//   ├── compileCmd  (overdue-compiler compile)
//   ├── validateCmd (overdue-compiler validate)
//   └── versionCmd  (overdue-compiler version)
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ginjaninja78/overdue-compiler/internal/config"
	"github.com/ginjaninja78/overdue-compiler/internal/logging"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// A missing file is fine; defaults apply.
var cfgFile string

// verbose mirrors the log to stderr at debug level.
var verbose bool

// errReported marks a failure that has already been reported (printed or
// logged). Execute exits non-zero without printing it again.
var errReported = errors.New("already reported")

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "overdue-compiler",
	Short: "Compile per-period inventory extracts into a cumulative overdue report",
	Long: `overdue-compiler merges the CSV extracts the inventory tool drops into a raw
data folder into one sorted, cumulative report.

Each run:
  - reads every file in the raw folder, including PreviousData.csv
  - writes "Compiled Output.csv" to the output folder
  - writes the full history back to the raw folder as PreviousData.csv
  - deletes the consumed extracts

Example Usage:
  overdue-compiler compile -x ./raw -o ./reports       # Compile new extracts
  overdue-compiler compile -x ./raw -o ./reports -f    # Recompile, backing up the old report
  overdue-compiler validate -x ./raw                   # Check extracts without writing`,

	SilenceErrors: true,
	SilenceUsage:  true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Mirror the log to stderr at debug level",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// setup loads the configuration and opens the log. Callers must Sync the
// returned logger.
func setup() (*config.Config, *logging.Logger, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Options{
		FilePath:   cfg.LogFile,
		Level:      level,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		Console:    verbose,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log: %w", err)
	}

	return cfg, logger, nil
}
