// Package aggregate holds the reducers behind the dashboard charts. Every
// function is pure, leaves its input untouched and returns an empty result
// (never a panic) for an empty view.
package aggregate

import (
	"cmp"
	"slices"

	"github.com/neymango11/Movie/internal/movie"
)

// TopNDefault is the size of the revenue ranking chart.
const TopNDefault = 10

// GenreTotal is one bar of the genre chart.
type GenreTotal struct {
	Genre string  `json:"genre"`
	Total float64 `json:"total"`
}

// YearCount is one point of the release timeline.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// GenreTotals sums box office per genre. Movies without a genre are grouped
// under the empty string.
func GenreTotals(view []movie.Movie) map[string]float64 {
	out := make(map[string]float64)
	for _, m := range view {
		out[m.Genre] += m.BoxOffice
	}
	return out
}

// SortedGenreTotals is GenreTotals ordered by total, largest first. Ties are
// broken by genre name so the order is stable across calls.
func SortedGenreTotals(view []movie.Movie) []GenreTotal {
	totals := GenreTotals(view)
	out := make([]GenreTotal, 0, len(totals))
	for g, t := range totals {
		out = append(out, GenreTotal{Genre: g, Total: t})
	}
	slices.SortFunc(out, func(a, b GenreTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Genre, b.Genre)
	})
	return out
}

// YearCounts counts movies per release year. Movies without a year are
// skipped.
func YearCounts(view []movie.Movie) map[int]int {
	out := make(map[int]int)
	for _, m := range view {
		if m.Year != nil {
			out[*m.Year]++
		}
	}
	return out
}

// SortedYearCounts is YearCounts ordered by year ascending.
func SortedYearCounts(view []movie.Movie) []YearCount {
	counts := YearCounts(view)
	out := make([]YearCount, 0, len(counts))
	for y, c := range counts {
		out = append(out, YearCount{Year: y, Count: c})
	}
	slices.SortFunc(out, func(a, b YearCount) int { return cmp.Compare(a.Year, b.Year) })
	return out
}

// TopN returns the n highest-grossing movies, largest first. Equal revenues
// keep their view order. n <= 0 yields an empty slice.
func TopN(view []movie.Movie, n int) []movie.Movie {
	if n <= 0 || len(view) == 0 {
		return []movie.Movie{}
	}
	sorted := slices.Clone(view)
	slices.SortStableFunc(sorted, func(a, b movie.Movie) int {
		return cmp.Compare(b.BoxOffice, a.BoxOffice)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n:n]
}

// Sum totals the box office of the whole view.
func Sum(view []movie.Movie) float64 {
	var total float64
	for _, m := range view {
		total += m.BoxOffice
	}
	return total
}
