package filing

import "fmt"

// EnforceWidth pads or trims fields to exactly width entries.
//
// Short lists are padded with empty trailing fields. Long lists lose trailing
// fields only while those fields are empty; non-empty data is never dropped.
// When the width cannot be reached the original fields are returned unchanged
// together with an error wrapping ErrFieldCount.
func EnforceWidth(fields []string, width int) ([]string, error) {
	n := len(fields)
	if n > width {
		end := n
		for end > width && fields[end-1] == "" {
			end--
		}
		if end != width {
			return fields, fmt.Errorf("%w: got %d fields, want %d", ErrFieldCount, n, width)
		}
		n = end
	}

	out := make([]string, width)
	copy(out, fields[:n])
	return out, nil
}
