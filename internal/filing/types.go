// Package filing is the record normalization and routing engine.
//
// A filing is one ASCII-28 delimited document: a two-line header followed by
// transaction records. The engine validates the header, applies the
// version-specific field shims, cleans every line into a canonical field
// list, enforces the layout width and hands each row to a [Dispatcher].
//
// The package performs no I/O of its own beyond reading the supplied
// io.Reader; sinks, file moves and configuration live elsewhere.
package filing

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

// Delimiter separates fields in a filing line (ASCII 28, file separator).
const Delimiter = "\x1c"

// NullMarker replaces interior empty header fields in rendered output.
const NullMarker = "NULL"

// Extension is the file extension of filing documents.
const Extension = ".fec"

// Mode selects how header rows are rendered.
type Mode int

const (
	// ModeFlat renders tab-delimited lines for flat output files.
	ModeFlat Mode = iota
	// ModeDatabase renders quoted SQL argument lists.
	ModeDatabase
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if m == ModeDatabase {
		return "database"
	}
	return "flat"
}

// ParseMode converts a configuration value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat", "file":
		return ModeFlat, nil
	case "db", "database":
		return ModeDatabase, nil
	default:
		return ModeFlat, fmt.Errorf("unknown output mode %q", s)
	}
}

// Row is a normalized record ready for a sink.
type Row struct {
	Kind   schema.Kind
	Fields []string // Canonical field values (exactly the layout width unless Kind is review)
	Line   string   // Rendered line without the trailing newline
}

// Header is a validated filing header.
type Header struct {
	ImageID  string
	Version  string
	FormType string
	Layout   schema.Definition
	Fields   []string // Raw fields of the second header line
}

// Sentinel errors for header-level rejections.
var (
	ErrInvalidHeaderSignature = errors.New("invalid header signature")
	ErrUnsupportedVersion     = errors.New("unsupported header version")
	ErrUnsupportedFormType    = errors.New("unsupported form type")
	ErrHeaderWidth            = errors.New("header field count does not match layout")
	ErrFieldCount             = errors.New("field count does not match layout")
)

// Status is the per-file result consumed by the file lifecycle.
type Status int

const (
	StatusAccepted Status = iota
	StatusRejected
)

// Reason classifies a rejection.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonInvalidHeader       Reason = "INV_HDR"
	ReasonUnsupportedVersion  Reason = "HDR"
	ReasonUnsupportedFormType Reason = "INV_FORMTYPE"
	ReasonHeaderWidth         Reason = "HDR_WIDTH"
	ReasonAlreadyImported     Reason = "ALREADY_IMPORTED"
	ReasonUnexpected          Reason = "UNEXPECTED"
)

// Outcome is Accepted or Rejected{Reason, Detail}.
type Outcome struct {
	Status Status
	Reason Reason
	Detail string
}

// Accept returns the accepted outcome.
func Accept() Outcome {
	return Outcome{Status: StatusAccepted}
}

// Reject returns a rejected outcome.
func Reject(reason Reason, detail string) Outcome {
	return Outcome{Status: StatusRejected, Reason: reason, Detail: detail}
}

// Accepted reports whether the file passed header validation.
func (o Outcome) Accepted() bool {
	return o.Status == StatusAccepted
}

// Tag returns the filename annotation for a rejection.
// Generic rejections return an empty tag.
func (o Outcome) Tag() string {
	switch o.Reason {
	case ReasonInvalidHeader:
		return string(ReasonInvalidHeader)
	case ReasonUnsupportedVersion, ReasonUnsupportedFormType:
		return string(o.Reason) + "_" + o.Detail
	default:
		return ""
	}
}

// Err returns the error behind a rejection, or nil when accepted.
func (o Outcome) Err() error {
	if o.Accepted() {
		return nil
	}
	var base error
	switch o.Reason {
	case ReasonInvalidHeader:
		base = ErrInvalidHeaderSignature
	case ReasonUnsupportedVersion:
		base = ErrUnsupportedVersion
	case ReasonUnsupportedFormType:
		base = ErrUnsupportedFormType
	case ReasonHeaderWidth:
		base = ErrHeaderWidth
	default:
		return errors.New(o.String())
	}
	if o.Detail == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, o.Detail)
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o.Accepted() {
		return "accepted"
	}
	if o.Detail == "" {
		return fmt.Sprintf("rejected (%s)", o.Reason)
	}
	return fmt.Sprintf("rejected (%s): %s", o.Reason, o.Detail)
}

// RejectedFileName returns the review file name for a rejected filing:
// <imageId>_<TAG>.fec, or the original name when the tag is empty.
func RejectedFileName(fileName string, o Outcome) string {
	tag := o.Tag()
	if tag == "" {
		return fileName
	}
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	return base + "_" + sanitizeTag(tag) + ext
}

// ImageID derives the image ID from a filing file name.
func ImageID(fileName string) string {
	return strings.TrimSuffix(filepath.Base(fileName), Extension)
}

// sanitizeTag keeps tags usable as part of a file name.
func sanitizeTag(tag string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == filepath.Separator:
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, tag)
}
