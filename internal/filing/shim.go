package filing

import "strings"

// Version shims align older and newer header versions to the canonical layouts.
//
//   - 6.4 Form 3P headers lack the split Line 17a1/17a2 values. Two empty
//     fields are inserted at index 34 (period) and two more at index 121
//     (total) of the already-shifted field list.
//   - 8.0 Schedule A, B and E records dropped the purpose code. One empty
//     field is inserted at index 22.

// ShimHeader applies the header-line shim for a version and form type.
func ShimHeader(version, formType string, fields []string) []string {
	if version != "6.4" || !strings.HasPrefix(formType, "F3P") {
		return fields
	}
	fields = insertEmpty(fields, 34, 2)
	return insertEmpty(fields, 121, 2)
}

// ShimRecord applies the data-record shim. probe is the record line with
// delimiters and quotes removed, upper-cased (see Probe).
func ShimRecord(version, probe string, fields []string) []string {
	if version != "8.0" {
		return fields
	}
	if strings.HasPrefix(probe, "SA") || strings.HasPrefix(probe, "SB") || strings.HasPrefix(probe, "SE") {
		return insertEmpty(fields, 22, 1)
	}
	return fields
}

// insertEmpty returns a copy of fields with count empty fields inserted
// before index. An index past the end appends.
func insertEmpty(fields []string, index, count int) []string {
	if index > len(fields) {
		index = len(fields)
	}
	out := make([]string, 0, len(fields)+count)
	out = append(out, fields[:index]...)
	for i := 0; i < count; i++ {
		out = append(out, "")
	}
	return append(out, fields[index:]...)
}
