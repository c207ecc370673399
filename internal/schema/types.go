// Package schema holds the canonical record layouts of a filing: the three
// report header forms and the transaction schedules. Every layout is
// registered at init time; its width is the number of columns it declares.
package schema

import "strings"

// FieldType represents the value type stored in a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldNumeric
)

// String returns the lowercase type name.
func (t FieldType) String() string {
	switch t {
	case FieldDate:
		return "date"
	case FieldNumeric:
		return "numeric"
	default:
		return "text"
	}
}

// FieldSpec describes a single column of a layout.
type FieldSpec struct {
	Name     string    // Column name as written in output header rows
	DBColumn string    // Database column name (derived from Name when empty)
	Type     FieldType // Value type used by the database sink
}

// Column returns the database column name for the field.
func (f FieldSpec) Column() string {
	if f.DBColumn != "" {
		return f.DBColumn
	}
	return ToDBColumnName(f.Name)
}

// Kind identifies a layout and the sink it is written to.
type Kind string

const (
	KindF3Header  Kind = "f3_headers"
	KindF3PHeader Kind = "f3p_headers"
	KindF3XHeader Kind = "f3x_headers"

	KindScheduleA  Kind = "schedule_a"
	KindScheduleB  Kind = "schedule_b"
	KindScheduleC  Kind = "schedule_c"
	KindScheduleC1 Kind = "schedule_c1"
	KindScheduleC2 Kind = "schedule_c2"
	KindScheduleD  Kind = "schedule_d"
	KindScheduleE  Kind = "schedule_e"
	KindText       Kind = "text"

	// KindReview is the catch-all sink. It has no layout.
	KindReview Kind = "review"
)

// Group separates report headers from transaction schedules.
type Group string

const (
	GroupHeader   Group = "Header"
	GroupSchedule Group = "Schedule"
)

// Definition contains everything needed to validate and store one layout.
type Definition struct {
	Kind  Kind
	Group Group
	Label string // Display name: "Schedule A"

	// FileLabel names flat output files: ScheduleAImport_<timestamp>.txt
	FileLabel string

	// Prefix is the record type prefix routed to this layout (schedules only).
	Prefix string

	// FormTypes lists the form types whose header uses this layout (headers only).
	FormTypes []string

	// Table is the database table that stores the layout.
	Table string

	FieldSpecs []FieldSpec
	Columns    []string
}

// Width returns the canonical field count of the layout.
func (d Definition) Width() int {
	return len(d.FieldSpecs)
}

// DBColumns returns the database column names in layout order.
func (d Definition) DBColumns() []string {
	cols := make([]string, len(d.FieldSpecs))
	for i, spec := range d.FieldSpecs {
		cols[i] = spec.Column()
	}
	return cols
}

// ToDBColumnName converts a column name to a database column name.
// "ContLastName" -> "contlastname"
func ToDBColumnName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// QuoteIdentifier quotes a PostgreSQL identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
