package aggregator

import (
	"fmt"

	"github.com/ginjaninja78/overdue-compiler/internal/types"
)

// ListRawFiles returns the regular files directly inside rawDir, sorted by
// name. A missing or unlistable directory is a *types.PathError.
func (a *Aggregator) ListRawFiles(rawDir string) ([]string, error) {
	a.logger.Info(fmt.Sprintf("Retrieving all file names from path: '%s'", rawDir))

	names, err := a.files.ListFiles(rawDir)
	if err != nil {
		return nil, &types.PathError{Path: rawDir, Err: err}
	}

	a.logger.Info("Filenames found.", "files", names)
	return names, nil
}
