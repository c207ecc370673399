package filing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

// recorder is a Dispatcher that keeps every row it receives.
type recorder struct {
	headers []Row
	records []Row
	review  []Row
	failOn  schema.Kind
}

func (r *recorder) Header(_ context.Context, row Row) error {
	if row.Kind == r.failOn {
		return errors.New("header sink down")
	}
	r.headers = append(r.headers, row)
	return nil
}

func (r *recorder) Record(_ context.Context, row Row) error {
	if row.Kind == r.failOn {
		return errors.New("record sink down")
	}
	r.records = append(r.records, row)
	return nil
}

func (r *recorder) Review(_ context.Context, row Row) error {
	r.review = append(r.review, row)
	return nil
}

func (r *recorder) total() int {
	return len(r.headers) + len(r.records) + len(r.review)
}

// dataLine builds a raw record line with n fields, starting with rowType.
func dataLine(rowType string, n int) string {
	fields := make([]string, n)
	fields[0] = rowType
	for i := 1; i < n; i++ {
		fields[i] = fmt.Sprintf("f%d", i)
	}
	return line(fields...)
}

// f3xHeader returns a header line pair for an F3XN filing with a full-width second line.
func f3xHeader(version string) string {
	fields := make([]string, 123)
	fields[0] = "F3XN"
	for i := 1; i < len(fields); i++ {
		fields[i] = fmt.Sprintf("h%d", i)
	}
	return line("HDR", "FEC", version, "Vendor", "1.0") + "\n" + line(fields...)
}

func filingText(header string, lines ...string) string {
	return header + "\n" + strings.Join(lines, "\n") + "\n"
}

func process(t *testing.T, mode Mode, text string) (Result, *recorder) {
	t.Helper()
	rec := &recorder{}
	res, err := NewEngine(mode).Process(context.Background(), "1234567", strings.NewReader(text), rec)
	require.NoError(t, err)
	return res, rec
}

func TestProcess_ScheduleARecord(t *testing.T) {
	res, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"), dataLine("SA11A", 45)))

	require.True(t, res.Outcome.Accepted())
	require.Len(t, rec.records, 1)

	row := rec.records[0]
	assert.Equal(t, schema.KindScheduleA, row.Kind)
	require.Len(t, row.Fields, 47)
	assert.Equal(t, []string{"F3XN", "1234567", "SA11A", "f1"}, row.Fields[:4])
	assert.Equal(t, strings.Join(row.Fields, "\t"), row.Line)
	assert.Equal(t, 1, res.Stats.Records[schema.KindScheduleA])
	assert.Empty(t, rec.review)
}

func TestProcess_PadsShortRecord(t *testing.T) {
	_, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"), dataLine("SA11A", 43)))

	require.Len(t, rec.records, 1)
	row := rec.records[0]
	require.Len(t, row.Fields, 47)
	assert.Equal(t, []string{"f42", "", ""}, row.Fields[44:])
}

func TestProcess_OverlongRecordGoesToReview(t *testing.T) {
	res, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"), dataLine("SA11A", 48)))

	require.True(t, res.Outcome.Accepted(), "record failures must not reject the file")
	assert.Empty(t, rec.records)
	require.Len(t, rec.review, 1)
	assert.Len(t, rec.review[0].Fields, 50)
	assert.Equal(t, "f47", rec.review[0].Fields[49])
	assert.Equal(t, 1, res.Stats.Review)
}

func TestProcess_OverlongRecordWithEmptyTailIsTrimmed(t *testing.T) {
	_, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"), dataLine("SA11A", 45)+"\x1c\x1c\x1c"))

	require.Len(t, rec.records, 1)
	assert.Len(t, rec.records[0].Fields, 47)
}

func TestProcess_UnknownRecordTypeGoesToReview(t *testing.T) {
	_, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"), dataLine("H4", 10), dataLine("SC3/1", 10)))

	assert.Empty(t, rec.records)
	require.Len(t, rec.review, 2)
	assert.Equal(t, schema.KindReview, rec.review[0].Kind)
	assert.Equal(t, "H4", rec.review[0].Fields[2])
}

func TestProcess_DropsBlankAndEmbeddedHeaderLines(t *testing.T) {
	res, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"),
		"",
		"   \t ",
		"\x1c\x1c\x1c",
		`"'"`,
		line("HDR", "FEC", "7.0"),
		line(`"f3xn"`, "C00123456"),
		dataLine("TEXT", 6),
	))

	assert.Len(t, rec.headers, 1)
	require.Len(t, rec.records, 1)
	assert.Equal(t, schema.KindText, rec.records[0].Kind)
	assert.Empty(t, rec.review)
	assert.Equal(t, 4, res.Stats.Blank)
	// Both header lines plus the two embedded ones.
	assert.Equal(t, 4, res.Stats.EmbeddedHeaders)
}

func TestProcess_RoutesScheduleCSubforms(t *testing.T) {
	_, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"),
		dataLine("SC/10", 38),
		dataLine("SC1/10", 48),
		dataLine("SC2/10", 17),
	))

	require.Len(t, rec.records, 3)
	assert.Equal(t, schema.KindScheduleC, rec.records[0].Kind)
	assert.Equal(t, schema.KindScheduleC1, rec.records[1].Kind)
	assert.Equal(t, schema.KindScheduleC2, rec.records[2].Kind)
}

func TestProcess_PreservesRecordOrder(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, line("SB21B", fmt.Sprintf("row%d", i)))
	}
	_, rec := process(t, ModeFlat, filingText(f3xHeader("7.0"), lines...))

	require.Len(t, rec.records, 20)
	for i, row := range rec.records {
		assert.Equal(t, fmt.Sprintf("row%d", i), row.Fields[3])
	}
}

func TestProcess_Version80PurposeCodePlaceholder(t *testing.T) {
	raw := make([]string, 44)
	raw[0] = "SA11AI"
	for i := 1; i < len(raw); i++ {
		raw[i] = fmt.Sprintf("f%d", i)
	}
	_, rec := process(t, ModeFlat, filingText(f3xHeader("8.0"), line(raw...)))

	require.Len(t, rec.records, 1)
	row := rec.records[0]
	require.Len(t, row.Fields, 47)

	def, _ := schema.Get(schema.KindScheduleA)
	assert.Equal(t, "ContPurposeCode", def.Columns[24])
	assert.Equal(t, "", row.Fields[24])
	assert.Equal(t, "f21", row.Fields[23])
	assert.Equal(t, "f22", row.Fields[25])
}

func TestProcess_Version64F3PHeaderWidth(t *testing.T) {
	fields := make([]string, 202)
	fields[0] = "F3PA"
	for i := 1; i < len(fields); i++ {
		fields[i] = fmt.Sprintf("h%d", i)
	}
	header := line("HDR", "FEC", "6.4") + "\n" + line(fields...)

	res, rec := process(t, ModeFlat, filingText(header))

	require.True(t, res.Outcome.Accepted(), res.Outcome.String())
	require.Len(t, rec.headers, 1)
	row := rec.headers[0]
	assert.Equal(t, schema.KindF3PHeader, row.Kind)
	require.Len(t, row.Fields, 207)
	assert.Equal(t, 207, strings.Count(row.Line, "\t")+1)

	def, _ := schema.Get(schema.KindF3PHeader)
	for _, i := range []int{35, 36, 122, 123} {
		assert.Equal(t, "", row.Fields[i], def.Columns[i])
	}
	assert.Equal(t, "Line17a1_IndivsItemzd_Prd", def.Columns[35])
	assert.Equal(t, "Line17a2_IndivsUnItemzd_Tot", def.Columns[123])
	assert.Equal(t, "h34", row.Fields[37])
}

func TestProcess_HeaderRendering(t *testing.T) {
	fields := []string{"F3XN", "C00123456", "O'BRIEN PAC", "", "X"}
	header := line("HDR", "FEC", "8.0") + "\n" + line(fields...)

	_, flat := process(t, ModeFlat, filingText(header))
	require.Len(t, flat.headers, 1)
	flatCols := strings.Split(flat.headers[0].Line, "\t")
	require.Len(t, flatCols, 124)
	assert.Equal(t, []string{"1234567", "F3XN", "C00123456", "O''BRIEN PAC", "NULL", "X"}, flatCols[:6])
	for i, col := range flatCols[6:] {
		assert.Empty(t, col, "padded column %d", i+6)
	}

	_, db := process(t, ModeDatabase, filingText(header))
	require.Len(t, db.headers, 1)
	assert.Equal(t, "'1234567','F3XN','C00123456','O''BRIEN PAC',NULL,'X'", db.headers[0].Line)
	require.Len(t, db.headers[0].Fields, 124)

	// Structured fields keep plain values.
	assert.Equal(t, "O'BRIEN PAC", db.headers[0].Fields[3])
	assert.Equal(t, "", db.headers[0].Fields[4])
}

func TestHeaderRow_PaddingStaysEmpty(t *testing.T) {
	def, ok := schema.Get(schema.KindF3Header)
	require.True(t, ok)
	h := Header{ImageID: "123", Version: "8.0", FormType: "F3N", Layout: def, Fields: []string{"F3N", "C001", "NAME"}}

	row, outcome := NewEngine(ModeFlat).HeaderRow(h)
	require.True(t, outcome.Accepted(), outcome.String())

	cols := strings.Split(row.Line, "\t")
	require.Len(t, cols, 94)
	assert.Equal(t, []string{"123", "F3N", "C001", "NAME"}, cols[:4])
	assert.NotContains(t, row.Line, NullMarker)
	for i, col := range cols[4:] {
		assert.Empty(t, col, "padded column %d", i+4)
	}
}

func TestHeaderRow_InteriorEmptyBecomesNull(t *testing.T) {
	def, ok := schema.Get(schema.KindF3Header)
	require.True(t, ok)
	h := Header{ImageID: "123", Version: "8.0", FormType: "F3N", Layout: def, Fields: []string{"F3N", "", "NAME"}}

	row, outcome := NewEngine(ModeDatabase).HeaderRow(h)
	require.True(t, outcome.Accepted(), outcome.String())
	assert.Equal(t, "'123','F3N',NULL,'NAME'", row.Line)
	assert.Len(t, row.Fields, 94)
}

func TestProcess_HeaderRejections(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason Reason
		tag    string
	}{
		{
			name:   "invalid signature",
			text:   filingText(line("XDR", "FEC", "8.0")+"\n"+line("F3XN"), dataLine("SA11A", 45)),
			reason: ReasonInvalidHeader,
			tag:    "INV_HDR",
		},
		{
			name:   "unsupported version",
			text:   filingText(line("HDR", "FEC", "6.5")+"\n"+line("F3XN"), dataLine("SA11A", 45)),
			reason: ReasonUnsupportedVersion,
			tag:    "HDR_6.5",
		},
		{
			name:   "unsupported form type",
			text:   filingText(line("HDR", "FEC", "8.0")+"\n"+line("F3S", "C00123456"), dataLine("SA11A", 45)),
			reason: ReasonUnsupportedFormType,
			tag:    "INV_FORMTYPE_F3S",
		},
		{
			name:   "header too wide",
			text:   filingText(line("HDR", "FEC", "8.0")+"\n"+dataLine("F3XN", 130), dataLine("SA11A", 45)),
			reason: ReasonHeaderWidth,
			tag:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rec := process(t, ModeFlat, tt.text)
			assert.False(t, res.Outcome.Accepted())
			assert.Equal(t, tt.reason, res.Outcome.Reason)
			assert.Equal(t, tt.tag, res.Outcome.Tag())
			assert.Zero(t, rec.total(), "rejected files must not reach any sink")
		})
	}
}

func TestProcess_DispatcherErrorAbortsFile(t *testing.T) {
	rec := &recorder{failOn: schema.KindScheduleB}
	text := filingText(f3xHeader("7.0"), dataLine("SA11A", 45), dataLine("SB21B", 44), dataLine("SA11A", 45))

	res, err := NewEngine(ModeFlat).Process(context.Background(), "1234567", strings.NewReader(text), rec)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record sink down")
	assert.Equal(t, ReasonUnexpected, res.Outcome.Reason)
	// Rows before the failure stay dispatched.
	assert.Len(t, rec.records, 1)
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(ModeFlat).Process(ctx, "1234567",
		strings.NewReader(filingText(f3xHeader("7.0"), dataLine("SA11A", 45))), &recorder{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeRecord_MatchesNormalize(t *testing.T) {
	h, outcome := ValidateHeader("1234567", line("HDR", "FEC", "7.0"), line("F3N", "C001"))
	require.True(t, outcome.Accepted())

	raw := ` "SD10" ` + Delimiter + `'ACME  CO'` + Delimiter + ` 12.50 `
	row := NewEngine(ModeFlat).NormalizeRecord(h, raw)

	want := []string{"F3N", "1234567", "SD10", "ACME CO", "12.50"}
	if diff := cmp.Diff(want, row.Fields[:5]); diff != "" {
		t.Errorf("NormalizeRecord() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, schema.KindScheduleD, row.Kind)
	assert.Len(t, row.Fields, 22)
}

func TestNormalizeRecord_RoutesOnCleanedType(t *testing.T) {
	h := Header{ImageID: "123", Version: "7.0", FormType: "F3XN"}

	row := NewEngine(ModeFlat).NormalizeRecord(h, line("'SA11A", "C00123456"))
	assert.Equal(t, schema.KindScheduleA, row.Kind)
	assert.Equal(t, "SA11A", row.Fields[2])
}
