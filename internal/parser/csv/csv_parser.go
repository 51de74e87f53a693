// Package csv parses the movie table into raw records. Header cells are kept
// as written (only trimmed and stripped of a UTF-8 BOM) so that the movie
// normalizer can resolve either header casing; rows with the wrong width are
// skipped and counted rather than failing the whole parse.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/neymango11/Movie/internal/config"
	"github.com/neymango11/Movie/pkg/records"
)

// Options configures the parser. All fields are optional.
type Options struct {
	// Comma is the field delimiter; ',' when zero.
	Comma rune

	// TrimSpace trims leading/trailing whitespace from each value.
	TrimSpace bool

	// HeaderMap renames source headers (e.g. a localized export) to the keys
	// the normalizer understands. Unmapped headers pass through unchanged.
	HeaderMap map[string]string

	// Logger receives one warning per skipped row, up to skipLogLimit.
	Logger *zap.Logger
}

// OptionsFrom reads parser options from a config options bag.
func OptionsFrom(o config.Options) Options {
	return Options{
		Comma:     o.Rune("comma", ','),
		TrimSpace: o.Bool("trim_space", true),
		HeaderMap: o.StringMap("header_map"),
	}
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs but not for concurrent use.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser {
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	return &Parser{opt: opt}
}

const (
	utf8BOM      = "\uFEFF"
	skipLogLimit = 100
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("csv: missing header row")

// Parse reads the header row and every body row from r. It returns the rows
// as records keyed by header, the number of skipped rows, and an error only
// when the header itself cannot be read. Empty cells become nil.
func (p *Parser) Parse(r io.Reader) ([]records.Record, int, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.FieldsPerRecord = -1

	h, err := cr.Read()
	if err == io.EOF {
		return nil, 0, ErrNoHeader
	}
	if err != nil {
		return nil, 0, fmt.Errorf("csv: read header: %w", err)
	}
	headers := normalizeHeaders(h, p.opt.HeaderMap)

	var (
		out     []records.Record
		skipped int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return out, skipped, fmt.Errorf("csv: read: %w", err)
			}
			p.skip(&skipped, "parse error", pe.Line, err)
			continue
		}
		if isBlank(row) {
			continue
		}
		if len(row) != len(headers) {
			line, _ := cr.FieldPos(0)
			p.skip(&skipped, "wrong field count", line, fmt.Errorf("expected %d fields, got %d", len(headers), len(row)))
			continue
		}

		rec := make(records.Record, len(row))
		for i, val := range row {
			if p.opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			rec[headers[i]] = emptyToNil(val)
		}
		out = append(out, rec)
	}
	return out, skipped, nil
}

func (p *Parser) skip(n *int, reason string, line int, err error) {
	if *n < skipLogLimit {
		p.opt.Logger.Warn("skipping csv row",
			zap.String("reason", reason),
			zap.Int("line", line),
			zap.Error(err))
	}
	*n++
}

// isBlank reports whether a row is a single empty cell (a blank line with
// trailing whitespace, which encoding/csv does not skip).
func isBlank(row []string) bool {
	return len(row) == 1 && strings.TrimSpace(row[0]) == ""
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// normalizeHeaders trims header cells, strips a BOM from the first one and
// applies headerMap. Blank headers get a positional "col_N" name.
func normalizeHeaders(h []string, headerMap map[string]string) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if i == 0 {
			c = strings.TrimSpace(strings.TrimPrefix(c, utf8BOM))
		}
		if m, ok := headerMap[c]; ok && m != "" {
			c = m
		}
		if c == "" {
			c = fmt.Sprintf("col_%d", i)
		}
		res[i] = c
	}
	return res
}
