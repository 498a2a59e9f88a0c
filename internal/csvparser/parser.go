// =============================================================================
// Overdue Report Compiler - CSV Parser Module
// =============================================================================
//
// This module reads the per-period CSV extracts produced by the inventory
// tool, and the PreviousData snapshot that has the same shape.
//
// FEATURES:
//   - Header-name lookup (column order in the extract does not matter)
//   - Tolerates ragged rows, lazy quotes and a UTF-8 byte order mark
//   - Blank rows are skipped
//   - Values are kept as text; numeric coercion happens on write
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/overdue-compiler/internal/types"
)

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents a parsed CSV file.
type CSVData struct {
	// Headers contains the column headers from the first row.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	Rows []map[string]string

	// RowNumbers holds the 1-indexed line of each entry in Rows.
	RowNumbers []int

	// SourceFile is the path to the source CSV file.
	SourceFile string
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file with a single header row.
//
// An empty file is not an error: it yields no headers and no rows.
func Parse(filePath string) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	data.SourceFile = filePath
	return data, nil
}

// ParseReader parses CSV content from r.
func ParseReader(r io.Reader) (*CSVData, error) {
	csvReader := csv.NewReader(bufio.NewReader(r))
	configureReader(csvReader)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV: %v", types.ErrMalformedInput, err)
	}

	data := &CSVData{}
	if len(allRows) == 0 {
		return data, nil
	}

	data.Headers = cleanHeaders(allRows[0])
	data.Rows, data.RowNumbers = extractDataRows(allRows, data.Headers)
	return data, nil
}

// configureReader configures the CSV reader for the inventory tool's exports.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Allow variable number of fields per row.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	reader.TrimLeadingSpace = true
}

// cleanHeaders trims whitespace and a leading byte order mark.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		if i == 0 {
			header = strings.TrimPrefix(header, "\ufeff")
		}
		cleaned[i] = strings.TrimSpace(header)
	}
	return cleaned
}

// extractDataRows converts every non-blank row after the header to a map.
// Missing trailing columns map to "".
func extractDataRows(allRows [][]string, headers []string) ([]map[string]string, []int) {
	dataRows := make([]map[string]string, 0, len(allRows)-1)
	rowNumbers := make([]int, 0, len(allRows)-1)

	for rowIndex := 1; rowIndex < len(allRows); rowIndex++ {
		row := allRows[rowIndex]

		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for colIndex, header := range headers {
			if colIndex < len(row) {
				rowMap[header] = strings.TrimSpace(row[colIndex])
			} else {
				rowMap[header] = ""
			}
		}

		dataRows = append(dataRows, rowMap)
		rowNumbers = append(rowNumbers, rowIndex+1)
	}

	return dataRows, rowNumbers
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// RECORD EXTRACTION
// =============================================================================

// ReadRecords parses filePath and maps every data row to a Record by header
// name. Records keep file row order.
func ReadRecords(filePath string) ([]types.Record, error) {
	data, err := Parse(filePath)
	if err != nil {
		return nil, err
	}
	return data.Records(), nil
}

// Records maps the parsed rows to Records.
func (d *CSVData) Records() []types.Record {
	records := make([]types.Record, 0, len(d.Rows))
	for i, row := range d.Rows {
		rec := types.FromFields(row)
		rec.SourceFile = d.SourceFile
		rec.RowNumber = d.RowNumbers[i]
		records = append(records, rec)
	}
	return records
}

// HasHeaders reports whether every name in required is present.
// It returns the missing names.
func (d *CSVData) HasHeaders(required []string) (bool, []string) {
	present := make(map[string]bool, len(d.Headers))
	for _, h := range d.Headers {
		present[h] = true
	}
	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}
