package core

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, input []byte, enc string) (string, *StreamingCountingReader) {
	t.Helper()
	r, counter, err := WrapForStreaming(bytes.NewReader(input), enc, int64(len(input)))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), counter
}

func TestWrapForStreaming_Encodings(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		enc      string
		expected string
	}{
		{
			name:     "ascii passes through",
			input:    []byte("HDR\x1cFEC\x1c8.0\n"),
			enc:      "windows-1252",
			expected: "HDR\x1cFEC\x1c8.0\n",
		},
		{
			name:     "windows-1252 smart quote and e acute",
			input:    []byte{'C', 'A', 'F', 0xC9, ' ', 0x93, 'x', 0x94},
			enc:      "windows-1252",
			expected: "CAFÉ “x”",
		},
		{
			name:     "latin1 e acute",
			input:    []byte{'C', 'A', 'F', 0xC9},
			enc:      "latin1",
			expected: "CAFÉ",
		},
		{
			name:     "utf-8 bom skipped",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, "HDR"...),
			enc:      "windows-1252",
			expected: "HDR",
		},
		{
			name:     "utf-8 valid text",
			input:    []byte("CAFÉ"),
			enc:      "utf-8",
			expected: "CAFÉ",
		},
		{
			name:     "utf-8 invalid byte replaced",
			input:    []byte{'a', 0xFF, 'b'},
			enc:      "utf8",
			expected: "a�b",
		},
		{
			name:     "empty input",
			input:    []byte{},
			enc:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, counter := decodeAll(t, tt.input, tt.enc)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, int64(len(tt.input)), counter.BytesRead)
		})
	}
}

func TestWrapForStreaming_DelimiterPreserved(t *testing.T) {
	line := strings.Join([]string{"SA11A", "C001", "\xe9t\xe9"}, "\x1c")
	got, _ := decodeAll(t, []byte(line), "windows-1252")
	assert.Equal(t, []string{"SA11A", "C001", "été"}, strings.Split(got, "\x1c"))
}

func TestWrapForStreaming_UnknownEncoding(t *testing.T) {
	_, _, err := WrapForStreaming(strings.NewReader(""), "ebcdic", 0)
	assert.ErrorContains(t, err, `unsupported encoding "ebcdic"`)
}

func TestStreamingCountingReader_Progress(t *testing.T) {
	r := NewStreamingCountingReader(strings.NewReader("0123456789"), 10)
	buf := make([]byte, 4)
	_, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 40, r.Progress())

	unknown := NewStreamingCountingReader(strings.NewReader("x"), 0)
	assert.Equal(t, 0, unknown.Progress())
}
