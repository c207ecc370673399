package core

// streaming.go builds the decoding reader a filing is parsed through.
//
// Filings are mostly ASCII but the free-text fields carry whatever code page
// the filer's software used. The reader chain is:
//
//   - BOM removal (a UTF-8 BOM in front of the HDR line is dropped)
//   - source decoding to UTF-8 (windows-1252 by default)
//   - byte counting for the run report
//
// Use WrapForStreaming to apply all transforms in the correct order.

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned for an unknown source encoding name.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Decoder returns the decoder for a configured source encoding.
// The utf-8 decoder replaces invalid byte sequences with U+FFFD.
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "utf-8", "utf8":
		return unicode.UTF8.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedEncoding, name)
	}
}

// StreamingCountingReader wraps an io.Reader to track bytes read.
type StreamingCountingReader struct {
	reader    io.Reader
	BytesRead int64
	Total     int64 // If known (0 if unknown)
}

// NewStreamingCountingReader creates a counting reader with optional total size.
func NewStreamingCountingReader(r io.Reader, total int64) *StreamingCountingReader {
	return &StreamingCountingReader{
		reader: r,
		Total:  total,
	}
}

// Read implements io.Reader.
func (r *StreamingCountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// Progress returns the read progress as a percentage (0-100).
// Returns 0 if total is unknown.
func (r *StreamingCountingReader) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	return int(r.BytesRead * 100 / r.Total)
}

// WrapForStreaming wraps a raw filing reader with BOM skipping, decoding
// from the named encoding and byte counting.
//
// The counter sits below the decoder so BytesRead tracks the source file
// size rather than the decoded length.
func WrapForStreaming(r io.Reader, encodingName string, totalSize int64) (io.Reader, *StreamingCountingReader, error) {
	dec, err := Decoder(encodingName)
	if err != nil {
		return nil, nil, err
	}
	counter := NewStreamingCountingReader(r, totalSize)
	return transform.NewReader(counter, unicode.BOMOverride(dec)), counter, nil
}
