package movie

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/neymango11/Movie/pkg/records"
)

// Normalize converts a raw row into a Movie. Each field is resolved through
// its candidate key list and numeric fields are coerced from text. A value
// that is missing or does not parse leaves Year, Runtime and IMDBScore nil
// and BoxOffice and Budget at zero; the row itself is never rejected here.
//
// Normalize does not modify r.
func Normalize(r records.Record) Movie {
	return Movie{
		Name:      text(r, KeysName),
		Year:      integer(r, KeysYear),
		Genre:     text(r, KeysGenre),
		Rating:    text(r, KeysRating),
		BoxOffice: floatOrZero(r, KeysBoxOffice),
		Budget:    floatOrZero(r, KeysBudget),
		Director:  text(r, KeysDirector),
		Country:   text(r, KeysCountry),
		Runtime:   integer(r, KeysRuntime),
		IMDBScore: number(r, KeysIMDBScore),
	}
}

// NormalizeAll maps Normalize over rs into a new slice.
func NormalizeAll(rs []records.Record) []Movie {
	out := make([]Movie, 0, len(rs))
	for _, r := range rs {
		out = append(out, Normalize(r))
	}
	return out
}

// lookup returns the first candidate value that is present, non-nil and not
// an empty string.
func lookup(r records.Record, keys []string) (any, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func text(r records.Record, keys []string) string {
	v, ok := lookup(r, keys)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// number coerces the resolved value to a finite float64.
func number(r records.Record, keys []string) *float64 {
	v, ok := lookup(r, keys)
	if !ok {
		return nil
	}
	var f float64
	switch t := v.(type) {
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = p
	case json.Number:
		p, err := t.Float64()
		if err != nil {
			return nil
		}
		f = p
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// integer is number truncated toward zero. Values outside the int32 range
// are treated as absent.
func integer(r records.Record, keys []string) *int {
	f := number(r, keys)
	if f == nil || *f <= math.MinInt32-1 || *f >= math.MaxInt32+1 {
		return nil
	}
	i := int(*f)
	return &i
}

func floatOrZero(r records.Record, keys []string) float64 {
	if f := number(r, keys); f != nil {
		return *f
	}
	return 0
}
