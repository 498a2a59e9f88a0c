// =============================================================================
// Overdue Report Compiler - Compile Command
// =============================================================================
//
// COMMAND USAGE:
//   overdue-compiler compile -x <raw data dir> -o <output dir> [-a] [-f]
//
// FLAGS:
//   -x, --raw-dir    : Folder the inventory tool exports into (required)
//   -o, --output-dir : Folder the compiled report is written to (required)
//   -a, --open       : Open the compiled report when finished
//   -f, --force      : Compile even without new extracts; backs up the report
//
// Bad folder paths are reported on the terminal before anything runs. Errors
// during the run go to the log file only.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/overdue-compiler/internal/aggregator"
	"github.com/ginjaninja78/overdue-compiler/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	rawDir    string
	outputDir string
	openFile  bool
	forceRun  bool
)

// compileCmd represents the 'compile' command.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile raw extracts into the cumulative report",
	Long: `The compile command reads every CSV in the raw data folder (new extracts plus
PreviousData.csv), sorts all rows by date and writes the report.

When the raw folder holds nothing but PreviousData.csv there is nothing new
and the run stops without touching any file, unless --force is given. A forced
run first copies the existing report to "Backup_Compiled Output.csv".`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompile()
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&rawDir, "raw-dir", "x", "", "Full path to the raw CSV files")
	compileCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Full path to save the output CSV file to")
	compileCmd.Flags().BoolVarP(&openFile, "open", "a", false, "Open the output file when processing finishes")
	compileCmd.Flags().BoolVarP(&forceRun, "force", "f", false, "Force the output file to compile")

	compileCmd.MarkFlagRequired("raw-dir")
	compileCmd.MarkFlagRequired("output-dir")
}

// runCompile checks the folders, then hands off to the aggregator.
func runCompile() error {
	if err := checkDir("Raw", rawDir); err != nil {
		return err
	}
	if err := checkDir("Output", outputDir); err != nil {
		return err
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	agg := aggregator.New(cfg, utils.NewFileManager(), logger)
	if _, err := agg.Run(rawDir, outputDir, aggregator.RunOptions{
		OpenFile: openFile,
		ForceRun: forceRun,
	}); err != nil {
		// Already in the log.
		return errReported
	}

	fmt.Println("Finished.")
	return nil
}

// checkDir prints a pre-flight error for a folder that does not exist.
func checkDir(label, path string) error {
	if utils.IsDir(path) {
		return nil
	}
	fmt.Fprintf(os.Stderr, "[ERROR] %s folder path: '%s' is not a valid path.\n", label, path)
	return errReported
}
