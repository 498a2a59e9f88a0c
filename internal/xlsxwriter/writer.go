// =============================================================================
// Overdue Report Compiler - XLSX Writer Module
// =============================================================================
//
// Writes an Excel copy of the compiled report. The CSV stays the deliverable;
// the workbook is for users who open the report in a spreadsheet and want the
// numbers typed as numbers with a frozen header row.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/overdue-compiler/internal/csvparser"
	"github.com/ginjaninja78/overdue-compiler/internal/types"
	"github.com/xuri/excelize/v2"
)

// FileName derives the workbook name from the CSV report name.
// "Compiled Output.csv" becomes "Compiled Output.xlsx".
func FileName(csvName string) string {
	return strings.TrimSuffix(csvName, ".csv") + ".xlsx"
}

// Write saves headers and one row per record to a single-sheet workbook at
// path, replacing any existing file. Numeric fields are stored as numbers.
func Write(path, sheetName string, headers []string, records []types.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile creates "Sheet1"; rename it rather than adding a second sheet.
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		row, err := numericRow(rec)
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// numericRow reuses the CSV coercion so both outputs fail the same way.
func numericRow(rec types.Record) ([]interface{}, error) {
	if _, err := csvparser.FormatRecord(rec); err != nil {
		return nil, err
	}
	row := []interface{}{rec.Date}
	for _, field := range types.NumericFields() {
		f, _ := csvparser.ParseNumber(rec.Field(field))
		row = append(row, f)
	}
	return row, nil
}
