package filing

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

// Dispatcher receives the rows produced for one filing, in input order.
type Dispatcher interface {
	// Header receives the filing's rendered header row.
	Header(ctx context.Context, row Row) error
	// Record receives a width-enforced data record.
	Record(ctx context.Context, row Row) error
	// Review receives records that could not be routed or enforced.
	Review(ctx context.Context, row Row) error
}

// Stats counts what happened to the lines of one filing.
type Stats struct {
	Lines           int                 `json:"lines"`
	Blank           int                 `json:"blank"`
	EmbeddedHeaders int                 `json:"embeddedHeaders"`
	Records         map[schema.Kind]int `json:"records"`
	Review          int                 `json:"review"`
}

// Result is the engine's verdict for one filing.
type Result struct {
	Header  Header
	Outcome Outcome
	Stats   Stats
}

// Engine normalizes and routes filings.
type Engine struct {
	mode   Mode
	router *Router
}

// NewEngine creates an engine rendering headers for the given mode.
func NewEngine(mode Mode) *Engine {
	return &Engine{mode: mode, router: NewRouter()}
}

// readerSize bounds the initial line buffer; longer lines still read whole.
const readerSize = 64 * 1024

// Process reads one filing and dispatches its rows.
//
// Header-level failures return a rejected outcome and a nil error; no rows are
// dispatched. Errors returned by the dispatcher or the reader abort the filing
// and are returned as-is; rows dispatched before the failure are not recalled.
func (e *Engine) Process(ctx context.Context, imageID string, r io.Reader, d Dispatcher) (Result, error) {
	br := bufio.NewReaderSize(r, readerSize)

	line1, _, err := readLine(br)
	if err != nil {
		err = fmt.Errorf("read header: %w", err)
		return Result{Outcome: Reject(ReasonUnexpected, err.Error())}, err
	}
	line2, _, err := readLine(br)
	if err != nil {
		err = fmt.Errorf("read header: %w", err)
		return Result{Outcome: Reject(ReasonUnexpected, err.Error())}, err
	}

	header, outcome := ValidateHeader(imageID, line1, line2)
	if !outcome.Accepted() {
		return Result{Outcome: outcome}, nil
	}

	row, outcome := e.HeaderRow(header)
	if !outcome.Accepted() {
		return Result{Header: header, Outcome: outcome}, nil
	}

	res := Result{
		Header:  header,
		Outcome: Accept(),
		Stats:   Stats{Records: make(map[schema.Kind]int)},
	}
	fail := func(err error) (Result, error) {
		res.Outcome = Reject(ReasonUnexpected, err.Error())
		return res, err
	}

	if err := d.Header(ctx, row); err != nil {
		return fail(fmt.Errorf("dispatch header: %w", err))
	}

	// The header lines pass through the same filters as every other line.
	for _, line := range []string{line1, line2} {
		if err := e.processLine(ctx, header, line, d, &res.Stats); err != nil {
			return fail(err)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		line, ok, err := readLine(br)
		if err != nil {
			return fail(fmt.Errorf("read line %d: %w", res.Stats.Lines+1, err))
		}
		if !ok {
			break
		}
		if err := e.processLine(ctx, header, line, d, &res.Stats); err != nil {
			return fail(err)
		}
	}

	return res, nil
}

// HeaderRow normalizes, enforces and renders the second header line.
//
// NULL markers are placed on the fields the filing carried. Columns added to
// reach the layout width stay empty.
func (e *Engine) HeaderRow(h Header) (Row, Outcome) {
	fields := Normalize(ShimHeader(h.Version, h.FormType, h.Fields))
	fields = append([]string{h.ImageID}, fields...)

	width := h.Layout.Width()
	enforced, err := EnforceWidth(fields, width)
	if err != nil {
		return Row{}, Reject(ReasonHeaderWidth, err.Error())
	}

	carried := enforced
	if len(fields) < width {
		carried = fields
	}
	escaped := append([]string{h.ImageID}, Escape(carried[1:])...)

	line := RenderHeader(escaped, e.mode)
	if e.mode == ModeFlat {
		line = padLine(line, width)
	}
	return Row{
		Kind:   h.Layout.Kind,
		Fields: enforced,
		Line:   line,
	}, Accept()
}

// NormalizeRecord turns one data line into a row. The returned row has
// KindReview when the record type is unknown or the width cannot be enforced.
// The record type is read from the cleaned first field, so a stray leading
// quote such as 'SA11A still routes to Schedule A.
func (e *Engine) NormalizeRecord(h Header, line string) Row {
	raw := strings.Split(line, Delimiter)
	raw = ShimRecord(h.Version, Probe(line), raw)

	fields := make([]string, 0, len(raw)+2)
	fields = append(fields, h.FormType, h.ImageID)
	fields = Normalize(append(fields, raw...))

	// The record type is the first field of the cleaned line.
	def, ok := e.router.Route(fields[2])
	if !ok {
		return Row{Kind: schema.KindReview, Fields: fields, Line: RenderRecord(fields)}
	}

	enforced, err := EnforceWidth(fields, def.Width())
	if err != nil {
		return Row{Kind: schema.KindReview, Fields: fields, Line: RenderRecord(fields)}
	}
	return Row{Kind: def.Kind, Fields: enforced, Line: RenderRecord(enforced)}
}

func (e *Engine) processLine(ctx context.Context, h Header, line string, d Dispatcher, stats *Stats) error {
	stats.Lines++

	if IsBlank(line) {
		stats.Blank++
		return nil
	}
	if IsEmbeddedHeader(Probe(line)) {
		stats.EmbeddedHeaders++
		return nil
	}

	row := e.NormalizeRecord(h, line)
	if row.Kind == schema.KindReview {
		stats.Review++
		if err := d.Review(ctx, row); err != nil {
			return fmt.Errorf("dispatch review line %d: %w", stats.Lines, err)
		}
		return nil
	}

	if err := d.Record(ctx, row); err != nil {
		return fmt.Errorf("dispatch %s line %d: %w", row.Kind, stats.Lines, err)
	}
	stats.Records[row.Kind]++
	return nil
}

// readLine returns the next line without its newline. ok is false at end of input.
func readLine(br *bufio.Reader) (line string, ok bool, err error) {
	line, err = br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if line == "" && err != nil {
		return "", false, nil
	}
	return strings.TrimSuffix(line, "\n"), true, nil
}
