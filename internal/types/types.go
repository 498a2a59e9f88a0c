// =============================================================================
// Overdue Report Compiler - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - aggregator
//   - validation
//   - xlsxwriter
//
// =============================================================================

package types

// =============================================================================
// FIELD NAMES
// =============================================================================
// These are the header names emitted by the upstream inventory tool. The
// snapshot file is written with the same names so it can be re-read as an
// ordinary raw input on the next run.

const (
	FieldDate            = "date"
	FieldOverdueQuantity = "totalQtyOverDue"
	FieldOverdueAmount   = "totalPriceOverDue"
	FieldTotalQuantity   = "totalQty"
	FieldTotalAmount     = "totalPrice"
)

// InternalHeaders returns the header row used for raw inputs and the snapshot.
func InternalHeaders() []string {
	return []string{
		FieldDate,
		FieldOverdueQuantity,
		FieldOverdueAmount,
		FieldTotalQuantity,
		FieldTotalAmount,
	}
}

// NumericFields lists the fields that must coerce to a float when written.
func NumericFields() []string {
	return []string{
		FieldOverdueQuantity,
		FieldOverdueAmount,
		FieldTotalQuantity,
		FieldTotalAmount,
	}
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one reporting-period entry read from a raw file.
//
// Values are kept exactly as they appeared in the source file. Numeric
// coercion happens when the record is serialized, so a malformed value is only
// detected at write time (or earlier when eager validation is enabled).
type Record struct {
	// Date is the ordering key. It is compared as a plain string.
	Date string

	OverdueQuantity string
	OverdueAmount   string
	TotalQuantity   string
	TotalAmount     string

	// DateMissing is set when the source file has no date column at all, as
	// opposed to an empty date cell. Such a record cannot be written.
	DateMissing bool

	// SourceFile and RowNumber point back at the raw input for error reporting.
	SourceFile string
	RowNumber  int
}

// Field returns the raw value of the named field, or "" for unknown names.
func (r Record) Field(name string) string {
	switch name {
	case FieldDate:
		return r.Date
	case FieldOverdueQuantity:
		return r.OverdueQuantity
	case FieldOverdueAmount:
		return r.OverdueAmount
	case FieldTotalQuantity:
		return r.TotalQuantity
	case FieldTotalAmount:
		return r.TotalAmount
	}
	return ""
}

// FromFields builds a Record by header-name lookup. Missing numeric names
// yield empty values, which fail numeric coercion later. A missing date name
// sets DateMissing.
func FromFields(fields map[string]string) Record {
	date, hasDate := fields[FieldDate]
	return Record{
		Date:            date,
		DateMissing:     !hasDate,
		OverdueQuantity: fields[FieldOverdueQuantity],
		OverdueAmount:   fields[FieldOverdueAmount],
		TotalQuantity:   fields[FieldTotalQuantity],
		TotalAmount:     fields[FieldTotalAmount],
	}
}
