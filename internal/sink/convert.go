package sink

// convert.go turns normalized field values into PostgreSQL values.
//
// Filing values are already cleaned by the normalization pipeline, so only
// the column type matters here:
//   - dates arrive as YYYYMMDD (a few other unambiguous layouts are accepted)
//   - amounts may carry currency symbols, thousands separators or
//     accounting-style parentheses
//   - empty values and the NULL marker become SQL NULL

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

var dateLayouts = []string{
	"20060102",
	"2006-01-02", "2006/01/02",
	"01/02/2006", "1/2/2006",
}

// isNull reports whether a value is stored as NULL.
func isNull(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == filing.NullMarker
}

// ToPgText converts a string to pgtype.Text.
// Returns invalid for empty values and the NULL marker.
func ToPgText(s string) pgtype.Text {
	if isNull(s) {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgDate converts a string to pgtype.Date.
// Returns invalid if the value is empty or matches no known layout.
func ToPgDate(s string) pgtype.Date {
	t, ok := parseDate(s)
	if !ok {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: t, Valid: true}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if isNull(s) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToPgNumeric converts a string to pgtype.Numeric.
// Handles currency symbols, thousands separators, and accounting format (parentheses for negative).
func ToPgNumeric(s string) pgtype.Numeric {
	clean, ok := cleanNumeric(s)
	if !ok {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(clean); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// cleanNumeric strips formatting from an amount and reports whether the
// result is a number.
func cleanNumeric(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if isNull(s) {
		return "", false
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return "", false
	}
	return s, true
}

// ConvertValue converts one field to the value written for its column.
// NULL-like values convert to an invalid (NULL) value of the column type;
// anything else that does not parse returns ErrInvalidValue.
func ConvertValue(spec schema.FieldSpec, v string) (any, error) {
	switch spec.Type {
	case schema.FieldDate:
		d := ToPgDate(v)
		if !d.Valid && !isNull(v) {
			return nil, fmt.Errorf("%w: %s: %q is not a date", ErrInvalidValue, spec.Name, v)
		}
		return d, nil
	case schema.FieldNumeric:
		n := ToPgNumeric(v)
		if !n.Valid && !isNull(v) {
			return nil, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidValue, spec.Name, v)
		}
		return n, nil
	default:
		return ToPgText(v), nil
	}
}

// ConvertRow converts a width-enforced row to COPY values in column order.
func ConvertRow(def schema.Definition, fields []string) ([]any, error) {
	if len(fields) != def.Width() {
		return nil, fmt.Errorf("%w: %s row has %d fields, want %d", ErrInvalidValue, def.Kind, len(fields), def.Width())
	}
	values := make([]any, len(fields))
	for i, spec := range def.FieldSpecs {
		v, err := ConvertValue(spec, fields[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// HeaderArgs converts a header row to the text array passed to the header
// function. Dates are rewritten as ISO dates and amounts stripped of
// formatting so the function can cast them.
func HeaderArgs(def schema.Definition, fields []string) ([]pgtype.Text, error) {
	if len(fields) != def.Width() {
		return nil, fmt.Errorf("%w: %s header has %d fields, want %d", ErrInvalidValue, def.Kind, len(fields), def.Width())
	}
	args := make([]pgtype.Text, len(fields))
	for i, spec := range def.FieldSpecs {
		v := fields[i]
		if isNull(v) {
			continue
		}
		switch spec.Type {
		case schema.FieldDate:
			t, ok := parseDate(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s: %q is not a date", ErrInvalidValue, spec.Name, v)
			}
			v = t.Format("2006-01-02")
		case schema.FieldNumeric:
			clean, ok := cleanNumeric(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidValue, spec.Name, v)
			}
			v = clean
		}
		args[i] = pgtype.Text{String: v, Valid: true}
	}
	return args, nil
}
