package sample

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neymango11/Movie/internal/movie"
)

// TestGenerate_ShapeAndRanges checks count, value ranges and closed sets for
// a handful of seeds.
func TestGenerate_ShapeAndRanges(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{0, 1, 42, 1 << 40} {
		got := NewSeeded(seed).Generate()
		if len(got) != Count {
			t.Fatalf("seed %d: len = %d, want %d", seed, len(got), Count)
		}

		names := map[string]struct{}{}
		for i, m := range got {
			if m.Year == nil || *m.Year < MinYear || *m.Year > MaxYear {
				t.Fatalf("seed %d row %d: year %v out of range", seed, i, m.Year)
			}
			if m.BoxOffice < MinBoxOffice || m.BoxOffice >= MaxBoxOffice {
				t.Fatalf("seed %d row %d: boxOffice %v out of range", seed, i, m.BoxOffice)
			}
			if m.Budget < MinBudget || m.Budget >= MaxBudget {
				t.Fatalf("seed %d row %d: budget %v out of range", seed, i, m.Budget)
			}
			if m.Runtime == nil || *m.Runtime < MinRuntime || *m.Runtime > MaxRuntime {
				t.Fatalf("seed %d row %d: runtime %v out of range", seed, i, m.Runtime)
			}
			if m.IMDBScore == nil || *m.IMDBScore < MinIMDBScore || *m.IMDBScore >= MaxIMDBScore {
				t.Fatalf("seed %d row %d: imdbScore %v out of range", seed, i, m.IMDBScore)
			}
			if !slices.Contains(Genres, m.Genre) || !slices.Contains(Ratings, m.Rating) ||
				!slices.Contains(Directors, m.Director) || !slices.Contains(Countries, m.Country) {
				t.Fatalf("seed %d row %d: value outside closed sets: %+v", seed, i, m)
			}
			names[m.Name] = struct{}{}
		}
		if len(names) != Count {
			t.Fatalf("seed %d: %d distinct names, want %d", seed, len(names), Count)
		}
	}
}

// TestGenerate_SurvivesQualityGate ensures synthetic data is admitted whole.
func TestGenerate_SurvivesQualityGate(t *testing.T) {
	t.Parallel()

	got := NewSeeded(7).Generate()
	admitted, dropped := movie.AdmitCount(got)
	if dropped != 0 || len(admitted) != Count {
		t.Fatalf("admitted %d, dropped %d; want %d, 0", len(admitted), dropped, Count)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewSeeded(99).Generate()
	b := NewSeeded(99).Generate()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different output (-a +b):\n%s", diff)
	}

	c := New(rand.NewPCG(1, 2)).Generate()
	d := New(rand.NewPCG(1, 2)).Generate()
	if diff := cmp.Diff(c, d); diff != "" {
		t.Fatalf("same source produced different output (-c +d):\n%s", diff)
	}
}

func TestGenerate_NilSource(t *testing.T) {
	t.Parallel()

	if got := New(nil).Generate(); len(got) != Count {
		t.Fatalf("len = %d, want %d", len(got), Count)
	}
}

func TestGenerate_NameIndexSuffix(t *testing.T) {
	t.Parallel()

	got := NewSeeded(3).Generate()
	for i, m := range got {
		ok := false
		for _, title := range Titles {
			if m.Name == title+" "+strconv.Itoa(i+1) {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("row %d: name %q is not <title> %d", i, m.Name, i+1)
		}
	}
}
