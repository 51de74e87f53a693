// Package filter derives dashboard views from the working dataset. A Spec is
// an immutable set of optional constraints; Apply is a pure function of the
// dataset and the Spec, so re-applying an unchanged Spec yields an identical
// view.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neymango11/Movie/internal/movie"
)

// All is the sentinel meaning "no constraint" for Genre and Rating.
const All = "all"

// Spec holds the user-selected constraints. An empty Genre or Rating, or the
// value All, places no constraint on that dimension; MaxYear <= 0 places no
// year ceiling.
type Spec struct {
	Genre   string `json:"genre"`
	Rating  string `json:"rating"`
	MaxYear int    `json:"maxYear"`
}

// IsZero reports whether s constrains nothing.
func (s Spec) IsZero() bool {
	return !active(s.Genre) && !active(s.Rating) && s.MaxYear <= 0
}

// String renders s for log lines.
func (s Spec) String() string {
	year := All
	if s.MaxYear > 0 {
		year = strconv.Itoa(s.MaxYear)
	}
	return fmt.Sprintf("genre=%s rating=%s max_year=%s", orAll(s.Genre), orAll(s.Rating), year)
}

// Apply returns the movies in data that satisfy every active constraint of s,
// in their original order. data is never modified; the result is a new slice
// even when s constrains nothing.
func Apply(data []movie.Movie, s Spec) []movie.Movie {
	out := make([]movie.Movie, 0, len(data))
	for _, m := range data {
		if s.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// Match reports whether m satisfies s.
func (s Spec) Match(m movie.Movie) bool {
	if active(s.Genre) && m.Genre != s.Genre {
		return false
	}
	if active(s.Rating) && m.Rating != s.Rating {
		return false
	}
	if s.MaxYear > 0 && (m.Year == nil || *m.Year > s.MaxYear) {
		return false
	}
	return true
}

// Reset returns the Spec the dashboard starts from: no genre or rating
// constraint and the year ceiling at the dataset's latest year.
func Reset(data []movie.Movie) Spec {
	s := Spec{Genre: All, Rating: All}
	for _, m := range data {
		if y := m.YearOr(0); y > s.MaxYear {
			s.MaxYear = y
		}
	}
	return s
}

// ParseSpec builds a Spec from user-facing string inputs. An empty maxYear
// or 0 means no ceiling; negative years are rejected.
func ParseSpec(genre, rating, maxYear string) (Spec, error) {
	s := Spec{Genre: strings.TrimSpace(genre), Rating: strings.TrimSpace(rating)}
	maxYear = strings.TrimSpace(maxYear)
	if maxYear == "" || strings.EqualFold(maxYear, All) {
		return s, nil
	}
	y, err := strconv.Atoi(maxYear)
	if err != nil {
		return Spec{}, fmt.Errorf("filter: parse max year %q: %w", maxYear, err)
	}
	if y < 0 {
		return Spec{}, fmt.Errorf("filter: max year %d is negative", y)
	}
	s.MaxYear = y
	return s, nil
}

func active(v string) bool {
	return v != "" && v != All
}

func orAll(v string) string {
	if !active(v) {
		return All
	}
	return v
}
