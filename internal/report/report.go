// Package report assembles everything the dashboard shows for one view and
// writes it as terminal tables, JSON or CSV.
package report

import (
	"fmt"
	"strconv"

	"github.com/neymango11/Movie/internal/aggregate"
	"github.com/neymango11/Movie/internal/dataset"
	"github.com/neymango11/Movie/internal/filter"
	"github.com/neymango11/Movie/internal/movie"
)

// EmptyMessage replaces the charts when a view has no movies.
const EmptyMessage = "No data available for selected filters"

// Report is the rendered state of the dashboard for one filter selection.
type Report struct {
	Origin      dataset.Origin `json:"origin"`
	Notice      string         `json:"notice,omitempty"`
	Fingerprint string         `json:"fingerprint"`
	Filter      filter.Spec    `json:"filter"`
	Total       int            `json:"total"`
	Count       int            `json:"count"`

	GenreTotals []aggregate.GenreTotal `json:"genreTotals"`
	YearCounts  []aggregate.YearCount  `json:"yearCounts"`
	Top         []movie.Movie          `json:"top"`
	Scatter     []aggregate.Point      `json:"scatter"`
	Extents     []FieldExtent          `json:"extents"`
}

// FieldExtent is the axis domain of one numeric field.
type FieldExtent struct {
	Field movie.NumericField `json:"field"`
	aggregate.Range
}

// Empty reports whether the view had no movies.
func (r Report) Empty() bool { return r.Count == 0 }

// extentFields are the axes the charts draw, in display order.
var extentFields = []movie.NumericField{
	movie.FieldYear,
	movie.FieldBoxOffice,
	movie.FieldBudget,
	movie.FieldRuntime,
	movie.FieldIMDBScore,
}

// Build computes the report for view, which must already be filtered from ds
// with spec. top <= 0 uses aggregate.TopNDefault.
func Build(ds dataset.Dataset, spec filter.Spec, view []movie.Movie, top int) Report {
	if top <= 0 {
		top = aggregate.TopNDefault
	}
	r := Report{
		Origin:      ds.Origin,
		Notice:      ds.Notice(),
		Fingerprint: fmt.Sprintf("%016x", ds.Fingerprint),
		Filter:      spec,
		Total:       len(ds.Movies),
		Count:       len(view),
		GenreTotals: aggregate.SortedGenreTotals(view),
		YearCounts:  aggregate.SortedYearCounts(view),
		Top:         aggregate.TopN(view, top),
		Scatter:     aggregate.Scatter(view),
		Extents:     []FieldExtent{},
	}
	for _, f := range extentFields {
		if rg, ok := aggregate.Extent(view, f); ok {
			r.Extents = append(r.Extents, FieldExtent{Field: f, Range: rg})
		}
	}
	return r
}

// Options is the content of the filter controls: the values a user can pick
// from, derived from the whole dataset.
type Options struct {
	Genres  []string        `json:"genres"`
	Ratings []string        `json:"ratings"`
	Years   aggregate.Range `json:"years"`
	HasYear bool            `json:"-"`
	Reset   filter.Spec     `json:"reset"`
}

// BuildOptions derives the control values from the working dataset.
func BuildOptions(ds dataset.Dataset) Options {
	years, ok := aggregate.Extent(ds.Movies, movie.FieldYear)
	return Options{
		Genres:  append([]string{filter.All}, aggregate.Genres(ds.Movies)...),
		Ratings: append([]string{filter.All}, aggregate.Ratings(ds.Movies)...),
		Years:   years,
		HasYear: ok,
		Reset:   filter.Reset(ds.Movies),
	}
}

func formatMoney(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 1, 64) + "M"
}

func formatOptInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatOptFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 1, 64)
}
