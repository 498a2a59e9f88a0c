package aggregator

import (
	"fmt"
	"path/filepath"

	"github.com/ginjaninja78/overdue-compiler/internal/csvparser"
	"github.com/ginjaninja78/overdue-compiler/internal/types"
)

// ReadRecords reads every named file in rawDir, in order, and returns their
// rows concatenated. Fields are looked up by header name and kept as text.
//
// The first file that cannot be opened or parsed fails the whole step.
func (a *Aggregator) ReadRecords(rawDir string, fileNames []string) ([]types.Record, error) {
	a.logger.Info(fmt.Sprintf("Reading CSV files from path: %s", rawDir))

	var records []types.Record
	for _, name := range fileNames {
		a.logger.Info(fmt.Sprintf("Reading file: '%s'", name))

		fileRecords, err := csvparser.ReadRecords(filepath.Join(rawDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		a.logger.Debug("File read.", "file", name, "records", len(fileRecords))

		records = append(records, fileRecords...)
	}

	return records, nil
}
