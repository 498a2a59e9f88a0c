// =============================================================================
// Overdue Report Compiler - Aggregator
// =============================================================================
//
// The aggregator owns one compile run from start to finish.
//
// PIPELINE:
//   1. Discovery      - list the raw data directory
//   2. Backup         - forced runs copy the current report aside
//   3. Run decision   - stop early when only the snapshot is present
//   4. Ingestion      - read every listed file into records
//   5. Reconciliation - stable sort by date
//   6. Persistence    - write the report, write the snapshot, purge raw files
//
// Every step takes its inputs as arguments and returns its outputs; nothing
// is carried between steps on the Aggregator itself. The first failing step
// aborts the run. Steps that already wrote are not rolled back.
//
// =============================================================================

package aggregator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/overdue-compiler/internal/config"
	"github.com/ginjaninja78/overdue-compiler/internal/types"
	"github.com/ginjaninja78/overdue-compiler/internal/validation"
	"github.com/ginjaninja78/overdue-compiler/internal/xlsxwriter"
	"github.com/google/uuid"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Logger is the log sink. Calls are fire-and-forget.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// FileStore is the file system as the aggregator sees it.
// *utils.FileManager is the production implementation.
type FileStore interface {
	ListFiles(dir string) ([]string, error)
	FileExists(path string) bool
	CopyFile(src, dst string) error
	DeleteFile(path string) error
	OpenFile(path string) error
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result describes a finished run.
type Result struct {
	// RunID correlates the run's log lines.
	RunID string

	// FilesDiscovered is the raw directory listing, in processing order.
	FilesDiscovered []string

	// RecordsRead is the number of records ingested, snapshot included.
	RecordsRead int

	OutputPath   string
	SnapshotPath string

	// BackupPath is set when a forced run backed up an existing report.
	BackupPath string

	// XLSXPath is set when the Excel copy was written.
	XLSXPath string

	// Purged lists the raw files removed, in removal order.
	Purged []string

	// Skipped is true when there was nothing new to process.
	Skipped bool

	Elapsed time.Duration
}

// RunOptions are the per-invocation switches.
type RunOptions struct {
	// OpenFile opens the compiled report after a successful run.
	OpenFile bool

	// ForceRun compiles even when only the snapshot is present, and backs up
	// the existing report first.
	ForceRun bool
}

// =============================================================================
// AGGREGATOR
// =============================================================================

// Aggregator compiles raw extracts into the cumulative report.
type Aggregator struct {
	cfg       *config.Config
	files     FileStore
	logger    Logger
	validator *validation.Validator
}

// New creates an Aggregator.
func New(cfg *config.Config, files FileStore, logger Logger) *Aggregator {
	return &Aggregator{
		cfg:       cfg,
		files:     files,
		logger:    logger,
		validator: validation.NewValidator(),
	}
}

// Run executes one compile of rawDir into outputDir.
//
// "Nothing new to process" is a successful run with Result.Skipped set.
// Every other failure is logged and returned.
func (a *Aggregator) Run(rawDir, outputDir string, opts RunOptions) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString()}

	a.logger.Info("Starting...", "run_id", result.RunID, "raw_dir", rawDir, "output_dir", outputDir)

	names, err := a.ListRawFiles(rawDir)
	if err != nil {
		a.logger.Error(fmt.Sprintf("Path to raw data does not exist. Path: '%s'", rawDir), "error", err)
		return nil, err
	}
	result.FilesDiscovered = names

	if opts.ForceRun {
		a.logger.Warn("Option forceRun set True. Output file generation will bypass raw folder checks.")
		backup, err := a.BackupExistingOutput(outputDir, a.cfg.OutputFileName)
		if err != nil {
			a.logger.Error("Failed to back up output file.", "error", err)
			return nil, err
		}
		result.BackupPath = backup
	}

	if opts.OpenFile {
		a.logger.Info("Option openFile set True. Output file will try to open when finished.")
	}

	if Decide(names, a.cfg.SnapshotFileName, opts.ForceRun) == DecisionSkip {
		a.logger.Warn("No new raw files to process. Stopping file processing.")
		result.Skipped = true
		result.Elapsed = time.Since(start)
		return result, nil
	}

	records, err := a.ReadRecords(rawDir, names)
	if err != nil {
		a.logger.Error("Failed to read raw files.", "error", err)
		return nil, err
	}
	result.RecordsRead = len(records)

	if a.cfg.EagerValidation {
		if err := a.validator.ValidateRecords(records).Err(); err != nil {
			a.logger.Error("Raw data failed validation.", "error", err)
			return nil, err
		}
	}

	sorted := a.Sort(records)

	result.OutputPath, err = a.WriteOutput(outputDir, a.cfg.OutputFileName, a.cfg.OutputHeaders, sorted)
	if err != nil {
		a.logger.Error("Failed to write output file.", "error", err)
		return nil, err
	}

	if a.cfg.XLSXExport {
		xlsxPath := filepath.Join(outputDir, xlsxwriter.FileName(a.cfg.OutputFileName))
		a.logger.Info(fmt.Sprintf("Writing workbook: '%s'", xlsxPath))
		if err := xlsxwriter.Write(xlsxPath, a.cfg.XLSXSheetName, a.cfg.OutputHeaders, sorted); err != nil {
			a.logger.Error("Failed to write workbook.", "error", err)
			return nil, err
		}
		result.XLSXPath = xlsxPath
	}

	// The snapshot goes back into the raw directory so the next run reads it
	// as an ordinary input.
	result.SnapshotPath, err = a.WriteOutput(rawDir, a.cfg.SnapshotFileName, types.InternalHeaders(), sorted)
	if err != nil {
		a.logger.Error("Failed to write snapshot file.", "error", err)
		return nil, err
	}

	result.Purged, err = a.PurgeRawFiles(rawDir, names)
	if err != nil {
		a.logger.Error("Failed to remove raw files.", "error", err, "removed", result.Purged)
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("Finished processing files. Compiled output file can be found at: %s", result.OutputPath),
		"run_id", result.RunID, "records", len(sorted))
	a.logger.Info(strings.Repeat("-", 40))

	if opts.OpenFile {
		if err := a.files.OpenFile(result.OutputPath); err != nil {
			a.logger.Warn("Could not open output file.", "path", result.OutputPath, "error", err)
		}
	}

	result.Elapsed = time.Since(start)
	return result, nil
}
