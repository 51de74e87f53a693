// Package movie defines the canonical movie record and the two steps that
// admit raw rows into the working dataset: normalization of loosely keyed,
// string-typed rows into Movie values, and the quality gate that drops rows
// without revenue or a release year.
package movie

// Movie is the canonical, typed movie record. Optional numeric fields are
// pointers; nil means the source did not carry a usable value.
type Movie struct {
	Name      string   `json:"name"`
	Year      *int     `json:"year"`
	Genre     string   `json:"genre,omitempty"`
	Rating    string   `json:"rating,omitempty"`
	BoxOffice float64  `json:"boxOffice"`
	Budget    float64  `json:"budget"`
	Director  string   `json:"director,omitempty"`
	Country   string   `json:"country,omitempty"`
	Runtime   *int     `json:"runtime,omitempty"`
	IMDBScore *float64 `json:"imdbScore,omitempty"`
}

// YearOr returns the release year, or def when it is absent.
func (m Movie) YearOr(def int) int {
	if m.Year == nil {
		return def
	}
	return *m.Year
}

// Int returns a pointer to v. Handy for building records in code.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// NumericField names a numeric column of Movie for extent computations.
type NumericField string

const (
	FieldYear      NumericField = "year"
	FieldBoxOffice NumericField = "boxOffice"
	FieldBudget    NumericField = "budget"
	FieldRuntime   NumericField = "runtime"
	FieldIMDBScore NumericField = "imdbScore"
)

// Value returns the value of f on m. ok is false when the field is absent or
// f is not a known numeric field.
func (m Movie) Value(f NumericField) (v float64, ok bool) {
	switch f {
	case FieldYear:
		if m.Year == nil {
			return 0, false
		}
		return float64(*m.Year), true
	case FieldBoxOffice:
		return m.BoxOffice, true
	case FieldBudget:
		return m.Budget, true
	case FieldRuntime:
		if m.Runtime == nil {
			return 0, false
		}
		return float64(*m.Runtime), true
	case FieldIMDBScore:
		if m.IMDBScore == nil {
			return 0, false
		}
		return *m.IMDBScore, true
	}
	return 0, false
}
