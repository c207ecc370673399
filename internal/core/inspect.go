package core

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

// InspectedRow is one row as it would be written to its sink.
type InspectedRow struct {
	Kind   schema.Kind `json:"kind"`
	Fields int         `json:"fields"`
	Line   string      `json:"line"`
}

// InspectReport is the dry-run view of a filing.
type InspectReport struct {
	FileName string         `json:"fileName"`
	ImageID  string         `json:"imageId"`
	Version  string         `json:"version,omitempty"`
	FormType string         `json:"formType,omitempty"`
	Status   string         `json:"status"`
	Reason   filing.Reason  `json:"reason,omitempty"`
	Detail   string         `json:"detail,omitempty"`
	Review   string         `json:"reviewName,omitempty"` // Name the file would get in review
	Header   *InspectedRow  `json:"header,omitempty"`
	Rows     []InspectedRow `json:"rows"`
	Stats    filing.Stats   `json:"stats"`
}

// collector is a Dispatcher that keeps every row in memory.
type collector struct {
	report *InspectReport
}

func (c *collector) Header(_ context.Context, row filing.Row) error {
	c.report.Header = inspected(row)
	return nil
}

func (c *collector) Record(_ context.Context, row filing.Row) error {
	c.report.Rows = append(c.report.Rows, *inspected(row))
	return nil
}

func (c *collector) Review(_ context.Context, row filing.Row) error {
	c.report.Rows = append(c.report.Rows, *inspected(row))
	return nil
}

func inspected(row filing.Row) *InspectedRow {
	return &InspectedRow{Kind: row.Kind, Fields: len(row.Fields), Line: row.Line}
}

// Inspect runs a filing through the engine without writing to any sink or
// moving the file.
func Inspect(ctx context.Context, r io.Reader, fileName string, mode filing.Mode, encoding string) (*InspectReport, error) {
	decoded, _, err := WrapForStreaming(r, encoding, 0)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(fileName)
	report := &InspectReport{
		FileName: name,
		ImageID:  strings.TrimSuffix(name, filepath.Ext(name)),
	}

	res, err := filing.NewEngine(mode).Process(ctx, report.ImageID, decoded, &collector{report: report})
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", name, err)
	}

	report.Version = res.Header.Version
	report.FormType = res.Header.FormType
	report.Stats = res.Stats
	report.Reason = res.Outcome.Reason
	report.Detail = res.Outcome.Detail
	if res.Outcome.Accepted() {
		report.Status = "accepted"
	} else {
		report.Status = "rejected"
		report.Review = filing.RejectedFileName(name, res.Outcome)
	}
	return report, nil
}
