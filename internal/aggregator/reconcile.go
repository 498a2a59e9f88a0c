package aggregator

import (
	"sort"

	"github.com/ginjaninja78/overdue-compiler/internal/types"
)

// Decision is the outcome of the run decision policy.
type Decision int

const (
	// DecisionProceed runs full ingestion and persistence.
	DecisionProceed Decision = iota

	// DecisionSkip ends the run without writing or deleting anything.
	DecisionSkip
)

func (d Decision) String() string {
	if d == DecisionSkip {
		return "skip"
	}
	return "proceed"
}

// Decide applies the run decision policy to a raw directory listing.
//
// The snapshot is written back into the raw directory every run, so a
// listing holding only the snapshot means nothing new arrived. A forced run
// always proceeds. An empty listing proceeds and produces header-only files.
func Decide(fileNames []string, snapshotName string, forceRun bool) Decision {
	if forceRun {
		return DecisionProceed
	}
	if len(fileNames) == 1 && fileNames[0] == snapshotName {
		return DecisionSkip
	}
	return DecisionProceed
}

// Sort logs and returns SortRecords(records).
func (a *Aggregator) Sort(records []types.Record) []types.Record {
	a.logger.Info("Sorting output list.")
	sorted := SortRecords(records)
	a.logger.Info("Done.")
	return sorted
}

// SortRecords returns a copy of records in ascending date order, compared
// as strings. Records with equal dates keep their input order. Duplicate
// dates are kept.
func SortRecords(records []types.Record) []types.Record {
	sorted := make([]types.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
