package aggregator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/overdue-compiler/internal/csvparser"
	"github.com/ginjaninja78/overdue-compiler/internal/types"
)

// WriteOutput writes headers and the records to dir/fileName, converting the
// numeric fields to floats. It returns the written path. A field that cannot
// be converted fails with types.ErrNumericFormat before the file is touched.
func (a *Aggregator) WriteOutput(dir, fileName string, headers []string, records []types.Record) (string, error) {
	a.logger.Info(fmt.Sprintf("Writing output filename: '%s' to path: '%s'", fileName, dir))

	path := filepath.Join(dir, fileName)
	if err := csvparser.WriteRecords(path, headers, records, csvparser.WriteOptions{UseCRLF: a.cfg.UseCRLF}); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", fileName, err)
	}

	a.logger.Info("Done.")
	return path, nil
}

// BackupFileName returns the backup name for a report name:
// "Compiled Output.csv" becomes "Backup_Compiled Output.csv".
func BackupFileName(prefix, fileName string) string {
	return prefix + strings.TrimSuffix(fileName, ".csv") + ".csv"
}

// BackupExistingOutput copies dir/fileName to its backup name if it exists,
// replacing the previous backup. It returns the backup path, or "" when
// there was nothing to back up.
func (a *Aggregator) BackupExistingOutput(dir, fileName string) (string, error) {
	src := filepath.Join(dir, fileName)
	if !a.files.FileExists(src) {
		a.logger.Info("No existing output file to back up.", "path", src)
		return "", nil
	}

	dst := filepath.Join(dir, BackupFileName(a.cfg.BackupPrefix, fileName))
	a.logger.Info(fmt.Sprintf("Backing up output file to: '%s'", dst))
	if err := a.files.CopyFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// PurgeRawFiles deletes every listed file in dir except the snapshot. It
// stops at the first failure, leaving the rest in place, and returns the
// files removed so far together with a *types.DeletionError.
func (a *Aggregator) PurgeRawFiles(dir string, fileNames []string) ([]string, error) {
	a.logger.Info(fmt.Sprintf("Removing all raw files from path: %s", dir))

	var removed []string
	for _, name := range fileNames {
		if name == a.cfg.SnapshotFileName {
			continue
		}
		a.logger.Info(fmt.Sprintf("Removing filename: '%s'", name))
		if err := a.files.DeleteFile(filepath.Join(dir, name)); err != nil {
			return removed, &types.DeletionError{File: name, Err: err}
		}
		removed = append(removed, name)
	}
	return removed, nil
}
