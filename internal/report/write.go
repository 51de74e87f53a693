package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/neymango11/Movie/internal/aggregate"
	"github.com/neymango11/Movie/internal/movie"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Formats lists the accepted values of Write's format argument.
var Formats = []string{FormatTable, FormatJSON, FormatCSV}

// Write renders r in format. The CSV format lists the ranked movies of the
// view in the column layout of the source table.
func Write(w io.Writer, r Report, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatCSV:
		return writeCSV(w, r.Top)
	case FormatTable, "":
		return writeTables(w, r)
	default:
		return fmt.Errorf("report: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// WriteOptions renders the filter control values.
func WriteOptions(w io.Writer, o Options, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, o)
	case FormatTable, "", FormatCSV:
		t := newTable(w)
		t.AppendHeader(table.Row{"Control", "Values"})
		t.AppendRow(table.Row{"genre", strings.Join(o.Genres, ", ")})
		t.AppendRow(table.Row{"rating", strings.Join(o.Ratings, ", ")})
		years := "-"
		if o.HasYear {
			years = fmt.Sprintf("%d .. %d", int(o.Years.Min), int(o.Years.Max))
		}
		t.AppendRow(table.Row{"year", years})
		t.Render()
		return nil
	default:
		return fmt.Errorf("report: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func writeTables(w io.Writer, r Report) error {
	if r.Notice != "" {
		fmt.Fprintf(w, "NOTE: %s\n\n", r.Notice)
	}
	fmt.Fprintf(w, "Source: %s (%d movies, fingerprint %s)\n", r.Origin, r.Total, r.Fingerprint)
	fmt.Fprintf(w, "Filter: %s -> %d movies\n\n", r.Filter, r.Count)

	if r.Empty() {
		fmt.Fprintln(w, EmptyMessage)
		return nil
	}

	genres := newTable(w)
	genres.SetTitle("Box office by genre")
	genres.AppendHeader(table.Row{"Genre", "Box office"})
	for _, g := range r.GenreTotals {
		genres.AppendRow(table.Row{g.Genre, formatMoney(g.Total)})
	}
	genres.Render()
	fmt.Fprintln(w)

	years := newTable(w)
	years.SetTitle("Releases per year")
	years.AppendHeader(table.Row{"Year", "Movies"})
	for _, y := range r.YearCounts {
		years.AppendRow(table.Row{y.Year, y.Count})
	}
	years.Render()
	fmt.Fprintln(w)

	top := newTable(w)
	top.SetTitle(fmt.Sprintf("Top %d by box office", len(r.Top)))
	top.AppendHeader(table.Row{"#", "Title", "Year", "Genre", "Rating", "Box office", "IMDB"})
	for i, m := range r.Top {
		top.AppendRow(table.Row{
			i + 1, aggregate.DisplayName(m.Name), formatOptInt(m.Year),
			m.Genre, m.Rating, formatMoney(m.BoxOffice), formatOptFloat(m.IMDBScore),
		})
	}
	top.Render()
	fmt.Fprintln(w)

	ext := newTable(w)
	ext.SetTitle("Axis extents")
	ext.AppendHeader(table.Row{"Field", "Min", "Max"})
	for _, e := range r.Extents {
		ext.AppendRow(table.Row{e.Field, trimFloat(e.Min), trimFloat(e.Max)})
	}
	ext.AppendFooter(table.Row{"scatter points", len(r.Scatter), ""})
	ext.Render()
	return nil
}

func writeCSV(w io.Writer, ms []movie.Movie) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(movie.Header); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for _, m := range ms {
		row := []string{
			m.Name, formatOptInt(m.Year), m.Genre, m.Rating,
			trimFloat(m.BoxOffice), trimFloat(m.Budget), m.Director, m.Country,
			formatOptInt(m.Runtime), optFloatRaw(m.IMDBScore),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optFloatRaw(p *float64) string {
	if p == nil {
		return ""
	}
	return trimFloat(*p)
}
