// =============================================================================
// Overdue Report Compiler - Validation Engine
// =============================================================================
//
// This module checks ingested records before anything is written. The compile
// pipeline normally discovers a bad value only when it serializes the record;
// the validator finds every bad value up front. It backs the `validate`
// command and the eager_validation setting.
//
// ERROR HANDLING:
//   - Errors are collected, not returned on the first hit
//   - Each error carries the file, row, field and value
//   - "error" severity blocks a compile, "warning" does not
//
// =============================================================================

package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/overdue-compiler/internal/csvparser"
	"github.com/ginjaninja78/overdue-compiler/internal/types"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation finding.
type ValidationError struct {
	Severity string

	// File is the raw file the record came from.
	File string

	// RowNumber is the 1-indexed row in File, 0 for file-level findings.
	RowNumber int

	Field   string
	Value   string
	Rule    string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(filepath.Base(e.File))
	if e.RowNumber > 0 {
		fmt.Fprintf(&b, " row %d", e.RowNumber)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " [%s]", e.Field)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	return b.String()
}

// ValidationResult contains the outcome of a validation pass.
type ValidationResult struct {
	Errors   []*ValidationError
	Warnings []*ValidationError

	// RecordsChecked is the number of records inspected.
	RecordsChecked int
}

// IsValid reports whether no error-severity findings were recorded.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Err returns the first error-severity finding as a *types.FieldError, or
// nil when the result is valid.
func (r *ValidationResult) Err() error {
	if r.IsValid() {
		return nil
	}
	first := r.Errors[0]
	kind := types.ErrMalformedInput
	if first.Rule == "numeric" {
		kind = types.ErrNumericFormat
	}
	return &types.FieldError{
		File:  first.File,
		Row:   first.RowNumber,
		Field: first.Field,
		Value: first.Value,
		Err:   fmt.Errorf("%w: %s", kind, first.Message),
	}
}

func (r *ValidationResult) add(e *ValidationError) {
	if e.Severity == SeverityWarning {
		r.Warnings = append(r.Warnings, e)
		return
	}
	r.Errors = append(r.Errors, e)
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks headers and records.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateHeaders reports every required header name missing from data.
func (v *Validator) ValidateHeaders(data *csvparser.CSVData) *ValidationResult {
	result := &ValidationResult{}
	if len(data.Headers) == 0 {
		// An empty file contributes no records; nothing to check.
		return result
	}
	_, missing := data.HasHeaders(types.InternalHeaders())
	for _, name := range missing {
		result.add(&ValidationError{
			Severity: SeverityError,
			File:     data.SourceFile,
			Field:    name,
			Rule:     "required_header",
			Message:  fmt.Sprintf("missing required header '%s'", name),
		})
	}
	return result
}

// ValidateRecords checks every record. Numeric fields must coerce to a
// float. A missing date column is an error; an empty date cell is only a
// warning since it sorts first.
func (v *Validator) ValidateRecords(records []types.Record) *ValidationResult {
	result := &ValidationResult{RecordsChecked: len(records)}
	for _, rec := range records {
		for _, e := range v.ValidateRecord(rec) {
			result.add(e)
		}
	}
	return result
}

// ValidateRecord checks a single record.
func (v *Validator) ValidateRecord(rec types.Record) []*ValidationError {
	var errs []*ValidationError

	if rec.DateMissing {
		errs = append(errs, &ValidationError{
			Severity:  SeverityError,
			File:      rec.SourceFile,
			RowNumber: rec.RowNumber,
			Field:     types.FieldDate,
			Rule:      "required_header",
			Message:   fmt.Sprintf("missing required header '%s'", types.FieldDate),
		})
	} else if strings.TrimSpace(rec.Date) == "" {
		errs = append(errs, &ValidationError{
			Severity:  SeverityWarning,
			File:      rec.SourceFile,
			RowNumber: rec.RowNumber,
			Field:     types.FieldDate,
			Rule:      "date",
			Message:   "date is empty",
		})
	}

	for _, field := range types.NumericFields() {
		value := rec.Field(field)
		if msg := validateNumeric(value); msg != "" {
			errs = append(errs, &ValidationError{
				Severity:  SeverityError,
				File:      rec.SourceFile,
				RowNumber: rec.RowNumber,
				Field:     field,
				Value:     value,
				Rule:      "numeric",
				Message:   msg,
			})
		}
	}

	return errs
}

// validateNumeric returns an error message, or "" if value is a number.
func validateNumeric(value string) string {
	if strings.TrimSpace(value) == "" {
		return "value is empty"
	}
	if _, err := csvparser.ParseNumber(value); err != nil {
		return fmt.Sprintf("'%s' is not a number", value)
	}
	return ""
}

// Merge appends other's findings to r.
func (r *ValidationResult) Merge(other *ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.RecordsChecked += other.RecordsChecked
}

// =============================================================================
// REPORTING
// =============================================================================

// FormatErrors renders findings one per line, errors first.
func FormatErrors(result *ValidationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Records checked: %d\n", result.RecordsChecked)
	fmt.Fprintf(&b, "Errors:          %d\n", len(result.Errors))
	fmt.Fprintf(&b, "Warnings:        %d\n", len(result.Warnings))
	for _, e := range result.Errors {
		fmt.Fprintf(&b, "  ✗ %s\n", e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "  ! %s\n", w.Error())
	}
	return b.String()
}
