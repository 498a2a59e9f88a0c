package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ginjaninja78/overdue-compiler/internal/types"
)

// WriteOptions controls how records are serialized.
type WriteOptions struct {
	// UseCRLF terminates lines with \r\n instead of \n.
	UseCRLF bool
}

// ParseNumber coerces a raw field value to a float. Values beyond the float64
// range saturate to ±Inf (or 0 on underflow) instead of failing.
func ParseNumber(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// FormatNumber renders f the way the report has always shown it: the
// shortest exact decimal, with ".0" added to integral values. Decimal
// exponents below -4 or from 16 up switch to exponent form ("1e+20",
// "1e-05").
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatRecord converts a record to an output row: the date as-is followed
// by the four numeric fields. A record read from a file without a date
// column fails with a *types.FieldError wrapping types.ErrMalformedInput;
// the first numeric field that cannot be coerced fails with one wrapping
// types.ErrNumericFormat.
func FormatRecord(rec types.Record) ([]string, error) {
	if rec.DateMissing {
		return nil, &types.FieldError{
			File:  rec.SourceFile,
			Row:   rec.RowNumber,
			Field: types.FieldDate,
			Err:   fmt.Errorf("%w: missing header '%s'", types.ErrMalformedInput, types.FieldDate),
		}
	}

	row := make([]string, 0, 5)
	row = append(row, rec.Date)
	for _, name := range types.NumericFields() {
		raw := rec.Field(name)
		f, err := ParseNumber(raw)
		if err != nil {
			return nil, &types.FieldError{
				File:  rec.SourceFile,
				Row:   rec.RowNumber,
				Field: name,
				Value: raw,
				Err:   fmt.Errorf("%w: %v", types.ErrNumericFormat, err),
			}
		}
		row = append(row, FormatNumber(f))
	}
	return row, nil
}

// WriteRecords writes headers followed by one row per record to filePath,
// replacing any existing file.
//
// Every record is formatted before the file is opened, so a malformed value
// leaves an existing file untouched.
func WriteRecords(filePath string, headers []string, records []types.Record, opts WriteOptions) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, headers)
	for _, rec := range records {
		row, err := FormatRecord(rec)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}

	writer := csv.NewWriter(file)
	writer.UseCRLF = opts.UseCRLF
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("error writing data to CSV: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing CSV file: %w", err)
	}
	return nil
}
