package filing

import "strings"

// Field separators written between quoted header values.
const (
	databaseSeparator = "','"
	flatSeparator     = "'\t'"
)

// RenderHeader renders escaped header fields (image ID first) as one line.
//
// In database mode the result is the quoted argument list of a stored
// procedure call: 'a','b',NULL,'c'. Only inspect reports show it; the
// Postgres sink binds Row.Fields as parameters and never executes this line.
// In flat mode the quoting is stripped back to plain tabs and the line is
// padded to len(fields) columns.
func RenderHeader(fields []string, mode Mode) string {
	sep := flatSeparator
	if mode == ModeDatabase {
		sep = databaseSeparator
	}

	line := "'" + strings.Join(fields, sep)
	// An empty last field leaves a dangling separator quote.
	if strings.HasSuffix(line, sep[1:]) {
		line = line[:len(line)-2]
	}
	line = strings.ReplaceAll(line, ",'"+NullMarker+"'", ","+NullMarker)
	line = strings.ReplaceAll(line, "\t'"+NullMarker+"'", "\t"+NullMarker)
	if !strings.HasSuffix(line, "'") && !strings.HasSuffix(line, NullMarker) {
		line += "'"
	}

	if mode == ModeDatabase {
		return line
	}

	line = strings.TrimPrefix(line, "'")
	line = strings.TrimSuffix(line, "'")
	line = strings.ReplaceAll(line, "'\t", "\t")
	line = strings.ReplaceAll(line, "\t'", "\t")
	return padLine(line, len(fields))
}

// RenderRecord renders data record fields as a tab-delimited line.
func RenderRecord(fields []string) string {
	return strings.Join(fields, "\t")
}

// padLine appends empty tab-separated columns until the line has width columns.
func padLine(line string, width int) string {
	n := strings.Count(line, "\t") + 1
	if n >= width {
		return line
	}
	return line + strings.Repeat("\t", width-n)
}
