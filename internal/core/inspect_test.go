package core

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

func TestInspect_Accepted(t *testing.T) {
	text := filingText("8.0", "F3XN",
		fields("SA11A", "C00123456"),
		fields("SC1/10", "C00123456"),
		fields("H4", "x"),
	)

	report, err := Inspect(context.Background(), strings.NewReader(text), "/tmp/Import/555.fec", filing.ModeDatabase, "")
	require.NoError(t, err)

	assert.Equal(t, "555.fec", report.FileName)
	assert.Equal(t, "555", report.ImageID)
	assert.Equal(t, "accepted", report.Status)
	assert.Equal(t, "8.0", report.Version)
	assert.Empty(t, report.Review)

	require.NotNil(t, report.Header)
	assert.Equal(t, schema.KindF3XHeader, report.Header.Kind)
	assert.Equal(t, 124, report.Header.Fields)
	assert.True(t, strings.HasPrefix(report.Header.Line, "'555','F3XN','C00123456','COMMITTEE'"), report.Header.Line)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, schema.KindScheduleA, report.Rows[0].Kind)
	assert.Equal(t, 47, report.Rows[0].Fields)
	assert.Equal(t, schema.KindScheduleC1, report.Rows[1].Kind)
	assert.Equal(t, schema.KindReview, report.Rows[2].Kind)
	assert.Equal(t, 1, report.Stats.Review)
}

func TestInspect_Rejected(t *testing.T) {
	report, err := Inspect(context.Background(), strings.NewReader(filingText("8.0", "F3S")), "555.fec", filing.ModeFlat, "utf-8")
	require.NoError(t, err)

	assert.Equal(t, "rejected", report.Status)
	assert.Equal(t, filing.ReasonUnsupportedFormType, report.Reason)
	assert.Equal(t, "555_INV_FORMTYPE_F3S.fec", report.Review)
	assert.Nil(t, report.Header)
	assert.Empty(t, report.Rows)
}

func TestInspect_UnknownEncoding(t *testing.T) {
	_, err := Inspect(context.Background(), strings.NewReader(""), "555.fec", filing.ModeFlat, "ebcdic")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}
