package aggregate

import (
	"slices"
	"unicode/utf8"

	"github.com/neymango11/Movie/internal/movie"
)

// Range is a closed [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Extent returns the minimum and maximum of field over the view, skipping
// movies where the field is absent. ok is false when no movie carries a value.
func Extent(view []movie.Movie, field movie.NumericField) (r Range, ok bool) {
	for _, m := range view {
		v, has := m.Value(field)
		if !has {
			continue
		}
		if !ok {
			r = Range{Min: v, Max: v}
			ok = true
			continue
		}
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}
	return r, ok
}

// Point is one dot of the score-versus-revenue scatter.
type Point struct {
	Name      string  `json:"name"`
	IMDBScore float64 `json:"imdbScore"`
	BoxOffice float64 `json:"boxOffice"`
}

// Scatter returns a point for every movie that has an IMDB score.
func Scatter(view []movie.Movie) []Point {
	out := make([]Point, 0, len(view))
	for _, m := range view {
		if m.IMDBScore == nil {
			continue
		}
		out = append(out, Point{Name: m.Name, IMDBScore: *m.IMDBScore, BoxOffice: m.BoxOffice})
	}
	return out
}

// Genres returns the distinct genres of the view, sorted.
func Genres(view []movie.Movie) []string {
	return distinct(view, func(m movie.Movie) string { return m.Genre })
}

// Ratings returns the distinct ratings of the view, sorted.
func Ratings(view []movie.Movie) []string {
	return distinct(view, func(m movie.Movie) string { return m.Rating })
}

func distinct(view []movie.Movie, key func(movie.Movie) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range view {
		k := key(m)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

const (
	displayMax  = 25
	displayKeep = 22
)

// DisplayName shortens long titles for chart labels: names longer than 25
// runes keep their first 22 runes followed by "...".
func DisplayName(name string) string {
	if utf8.RuneCountInString(name) <= displayMax {
		return name
	}
	r := []rune(name)
	return string(r[:displayKeep]) + "..."
}
