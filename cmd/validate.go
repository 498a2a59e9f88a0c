// =============================================================================
// Overdue Report Compiler - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   overdue-compiler validate -x <raw data dir>
//
// Reads every file in the raw folder and checks every row, the way compile
// would, but reports all problems at once and never writes or deletes.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ginjaninja78/overdue-compiler/internal/csvparser"
	"github.com/ginjaninja78/overdue-compiler/internal/validation"
	"github.com/ginjaninja78/overdue-compiler/pkg/utils"
	"github.com/spf13/cobra"
)

var validateRawDir string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check raw extracts without compiling",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateRawDir, "raw-dir", "x", "", "Full path to the raw CSV files")
	validateCmd.MarkFlagRequired("raw-dir")
}

func runValidate() error {
	if err := checkDir("Raw", validateRawDir); err != nil {
		return err
	}

	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	result, err := validateDir(validateRawDir)
	if err != nil {
		logger.Error("Validation could not complete.", "error", err)
		return err
	}

	logger.Info("Validation finished.",
		"raw_dir", validateRawDir,
		"records", result.RecordsChecked,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))

	fmt.Print(validation.FormatErrors(result))
	if !result.IsValid() {
		return errReported
	}
	return nil
}

// validateDir checks headers and rows of every file in dir.
func validateDir(dir string) (*validation.ValidationResult, error) {
	names, err := utils.NewFileManager().ListFiles(dir)
	if err != nil {
		return nil, err
	}

	v := validation.NewValidator()
	total := &validation.ValidationResult{}
	for _, name := range names {
		data, err := csvparser.Parse(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		total.Merge(v.ValidateHeaders(data))
		total.Merge(v.ValidateRecords(data.Records()))
	}
	return total, nil
}
