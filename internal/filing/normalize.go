package filing

import "strings"

// asciiSpace is the whitespace set trimmed at line ends. The delimiter is not
// whitespace.
const asciiSpace = " \t\n\v\f\r"

// quoteChars are the quoting characters stripped at line and field ends.
const quoteChars = `"'`

var controlToSpace = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// Normalize cleans a split line and returns a new field list.
//
// The steps run in order over the fields of one line:
//  1. tabs, carriage returns and newlines become spaces
//  2. whitespace is trimmed at the start and end of the line
//  3. runs of spaces collapse to one space
//  4. spaces next to a delimiter are dropped
//  5. quotes and whitespace are stripped at the start and end of the line
//  6. double quotes next to a delimiter are dropped
//  7. single quotes next to a delimiter are dropped
//  8. an interior field holding only '' becomes empty
//  9. '' becomes "
//  10. runs of " collapse to one "
//
// Steps 2 and 5 only touch the first and last field; steps 4, 6 and 7 only
// touch field edges that border a delimiter.
func Normalize(fields []string) []string {
	out := make([]string, len(fields))
	copy(out, fields)
	if len(out) == 0 {
		return out
	}
	last := len(out) - 1

	for i := range out {
		out[i] = collapseSpaces(controlToSpace.Replace(out[i]))
	}
	out[0] = strings.TrimLeft(out[0], asciiSpace)
	out[last] = strings.TrimRight(out[last], asciiSpace)

	for i := range out {
		if i < last {
			out[i] = strings.TrimRight(out[i], " ")
		}
		if i > 0 {
			out[i] = strings.TrimLeft(out[i], " ")
		}
	}

	out[0] = strings.TrimLeft(out[0], asciiSpace+quoteChars)
	out[last] = strings.TrimRight(out[last], asciiSpace+quoteChars)

	trimInnerEdges(out, `"`)
	trimInnerEdges(out, `'`)

	for i := range out {
		if i > 0 && i < last && out[i] == "''" {
			out[i] = ""
		}
		out[i] = collapseQuotes(strings.ReplaceAll(out[i], "''", `"`))
	}

	return out
}

// Escape prepares normalized header fields for rendering:
//  11. ' becomes '' (SQL literal escaping)
//  12. an empty interior field becomes NULL
func Escape(fields []string) []string {
	out := make([]string, len(fields))
	last := len(fields) - 1
	for i, f := range fields {
		f = strings.ReplaceAll(f, "'", "''")
		if f == "" && i > 0 && i < last {
			f = NullMarker
		}
		out[i] = f
	}
	return out
}

// trimInnerEdges removes cutset characters from every field edge that
// borders a delimiter.
func trimInnerEdges(fields []string, cutset string) {
	last := len(fields) - 1
	for i := range fields {
		if i < last {
			fields[i] = strings.TrimRight(fields[i], cutset)
		}
	}
	for i := range fields {
		if i > 0 {
			fields[i] = strings.TrimLeft(fields[i], cutset)
		}
	}
}

// collapseSpaces replaces every run of spaces with a single space.
func collapseSpaces(s string) string {
	return collapseRuns(s, ' ')
}

// collapseQuotes replaces every run of double quotes with a single one.
func collapseQuotes(s string) string {
	return collapseRuns(s, '"')
}

func collapseRuns(s string, c byte) string {
	pair := string([]byte{c, c})
	if !strings.Contains(s, pair) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == c && i > 0 && s[i-1] == c {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
