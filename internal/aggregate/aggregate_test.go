package aggregate

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neymango11/Movie/internal/movie"
	"github.com/neymango11/Movie/internal/sample"
)

func TestGenreTotals_Example(t *testing.T) {
	t.Parallel()

	view := []movie.Movie{
		{Genre: "Action", BoxOffice: 100},
		{Genre: "Drama", BoxOffice: 50},
		{Genre: "Action", BoxOffice: 30},
	}

	got := GenreTotals(view)
	want := map[string]float64{"Action": 130, "Drama": 50}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GenreTotals (-want +got):\n%s", diff)
	}

	sorted := SortedGenreTotals(view)
	wantSorted := []GenreTotal{{"Action", 130}, {"Drama", 50}}
	if diff := cmp.Diff(wantSorted, sorted); diff != "" {
		t.Fatalf("SortedGenreTotals (-want +got):\n%s", diff)
	}
}

func TestSortedGenreTotals_TiesByName(t *testing.T) {
	t.Parallel()

	view := []movie.Movie{
		{Genre: "Zombie", BoxOffice: 10},
		{Genre: "Alien", BoxOffice: 10},
		{Genre: "Max", BoxOffice: 20},
	}
	got := SortedGenreTotals(view)
	want := []GenreTotal{{"Max", 20}, {"Alien", 10}, {"Zombie", 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

// TestGenreTotals_SumProperty checks that per-genre totals add up to the
// grand total of the view.
func TestGenreTotals_SumProperty(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 20; seed++ {
		view := sample.NewSeeded(seed).Generate()
		var byGenre float64
		for _, v := range GenreTotals(view) {
			byGenre += v
		}
		if grand := Sum(view); math.Abs(byGenre-grand) > 1e-6 {
			t.Fatalf("seed %d: genre totals %v != grand total %v", seed, byGenre, grand)
		}
	}
}

func TestYearCounts(t *testing.T) {
	t.Parallel()

	view := []movie.Movie{
		{Year: movie.Int(2001)},
		{Year: movie.Int(1999)},
		{Year: movie.Int(2001)},
		{Name: "no-year"},
	}
	if diff := cmp.Diff(map[int]int{1999: 1, 2001: 2}, YearCounts(view)); diff != "" {
		t.Fatalf("YearCounts (-want +got):\n%s", diff)
	}
	want := []YearCount{{1999, 1}, {2001, 2}}
	if diff := cmp.Diff(want, SortedYearCounts(view)); diff != "" {
		t.Fatalf("SortedYearCounts (-want +got):\n%s", diff)
	}
}

func TestTopN(t *testing.T) {
	t.Parallel()

	view := []movie.Movie{
		{Name: "ten", BoxOffice: 10},
		{Name: "fifty", BoxOffice: 50},
		{Name: "thirty", BoxOffice: 30},
	}

	got := TopN(view, 2)
	if diff := cmp.Diff([]movie.Movie{view[1], view[2]}, got); diff != "" {
		t.Fatalf("TopN(2) (-want +got):\n%s", diff)
	}
	if view[0].Name != "ten" || view[1].Name != "fifty" {
		t.Fatalf("TopN reordered its input: %+v", view)
	}
	if got := TopN(view, 10); len(got) != 3 {
		t.Fatalf("TopN(10) len = %d, want 3", len(got))
	}
	if got := TopN(view, 0); len(got) != 0 {
		t.Fatalf("TopN(0) len = %d, want 0", len(got))
	}
}

func TestTopN_StableOnTies(t *testing.T) {
	t.Parallel()

	view := []movie.Movie{
		{Name: "first", BoxOffice: 5},
		{Name: "second", BoxOffice: 5},
		{Name: "big", BoxOffice: 9},
	}
	got := TopN(view, 3)
	var order []string
	for _, m := range got {
		order = append(order, m.Name)
	}
	if diff := cmp.Diff([]string{"big", "first", "second"}, order); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestExtent(t *testing.T) {
	t.Parallel()

	view := []movie.Movie{
		{Year: movie.Int(1990), BoxOffice: 5, IMDBScore: movie.Float(7.1)},
		{Year: movie.Int(2012), BoxOffice: 1},
		{Year: movie.Int(1975), BoxOffice: 9, IMDBScore: movie.Float(8.4)},
	}

	cases := []struct {
		field movie.NumericField
		want  Range
		ok    bool
	}{
		{movie.FieldYear, Range{1975, 2012}, true},
		{movie.FieldBoxOffice, Range{1, 9}, true},
		{movie.FieldIMDBScore, Range{7.1, 8.4}, true},
		{movie.FieldRuntime, Range{}, false},
	}
	for _, c := range cases {
		got, ok := Extent(view, c.field)
		if ok != c.ok || got != c.want {
			t.Errorf("Extent(%s) = (%+v,%v), want (%+v,%v)", c.field, got, ok, c.want, c.ok)
		}
	}
}

// TestEmptyView ensures every reducer degrades to an empty result.
func TestEmptyView(t *testing.T) {
	t.Parallel()

	var empty []movie.Movie

	if got := GenreTotals(empty); len(got) != 0 {
		t.Errorf("GenreTotals = %v", got)
	}
	if got := SortedGenreTotals(empty); got == nil || len(got) != 0 {
		t.Errorf("SortedGenreTotals = %#v", got)
	}
	if got := YearCounts(empty); len(got) != 0 {
		t.Errorf("YearCounts = %v", got)
	}
	if got := SortedYearCounts(empty); got == nil || len(got) != 0 {
		t.Errorf("SortedYearCounts = %#v", got)
	}
	if got := TopN(empty, TopNDefault); got == nil || len(got) != 0 {
		t.Errorf("TopN = %#v", got)
	}
	if _, ok := Extent(empty, movie.FieldYear); ok {
		t.Errorf("Extent ok on empty view")
	}
	if got := Scatter(empty); len(got) != 0 {
		t.Errorf("Scatter = %v", got)
	}
	if got := Genres(empty); got == nil || len(got) != 0 {
		t.Errorf("Genres = %#v", got)
	}
}

func TestScatterAndOptions(t *testing.T) {
	t.Parallel()

	view := []movie.Movie{
		{Name: "a", Genre: "Drama", Rating: "R", BoxOffice: 3, IMDBScore: movie.Float(6.5)},
		{Name: "b", Genre: "Action", Rating: "PG", BoxOffice: 4},
		{Name: "c", Genre: "Drama", BoxOffice: 5, IMDBScore: movie.Float(8)},
	}

	want := []Point{{"a", 6.5, 3}, {"c", 8, 5}}
	if diff := cmp.Diff(want, Scatter(view)); diff != "" {
		t.Fatalf("Scatter (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Action", "Drama"}, Genres(view)); diff != "" {
		t.Fatalf("Genres (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"PG", "R"}, Ratings(view)); diff != "" {
		t.Fatalf("Ratings (-want +got):\n%s", diff)
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	short := "Heat"
	exact := strings.Repeat("x", 25)
	long := "The Lord of the Rings: The Return of the King"

	if got := DisplayName(short); got != short {
		t.Errorf("DisplayName(%q) = %q", short, got)
	}
	if got := DisplayName(exact); got != exact {
		t.Errorf("DisplayName(25 chars) = %q", got)
	}
	if got, want := DisplayName(long), "The Lord of the Rings:..."; got != want {
		t.Errorf("DisplayName(long) = %q, want %q", got, want)
	}
	if got := DisplayName(strings.Repeat("é", 30)); got != strings.Repeat("é", 22)+"..." {
		t.Errorf("DisplayName(multibyte) = %q", got)
	}
}
