// Package sample produces a small synthetic movie dataset. It keeps the
// dashboard usable when neither a bundled dataset nor the external CSV is
// available; the numbers are plausible-looking, nothing more.
package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/neymango11/Movie/internal/movie"
)

// Count is the number of movies Generate returns.
const Count = 50

// Closed value sets the generator draws from.
var (
	Genres = []string{
		"Action", "Sci-Fi", "Drama", "Comedy", "Horror",
		"Animation", "Fantasy", "Crime", "War", "Musical",
	}
	Ratings   = []string{"G", "PG", "PG-13", "R"}
	Directors = []string{
		"Christopher Nolan", "Steven Spielberg", "Quentin Tarantino",
		"Martin Scorsese", "James Cameron",
	}
	Countries = []string{"USA", "UK", "Australia", "New Zealand"}
	Titles    = []string{
		"The Dark Knight", "Inception", "Interstellar", "The Matrix", "Pulp Fiction",
		"Forrest Gump", "Titanic", "Avatar", "Jurassic Park", "Star Wars",
		"The Avengers", "Black Panther", "The Lion King", "Toy Story", "Frozen",
	}
)

// Value ranges. Integer ranges are inclusive; float ranges are [min, max).
const (
	MinYear      = 1970
	MaxYear      = 2019
	MinBoxOffice = 50.0
	MaxBoxOffice = 2050.0
	MinBudget    = 10.0
	MaxBudget    = 210.0
	MinRuntime   = 90
	MaxRuntime   = 179
	MinIMDBScore = 6.0
	MaxIMDBScore = 9.0
)

// Generator draws synthetic movies from an injected random source. It is not
// safe for concurrent use, matching *rand.Rand.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator reading from src. A nil src uses a randomly seeded
// PCG source.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a Generator whose output is fully determined by seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns Count synthetic movies. Names are a random title plus the
// 1-based index, so they are distinct within one call.
func (g *Generator) Generate() []movie.Movie {
	out := make([]movie.Movie, 0, Count)
	for i := 0; i < Count; i++ {
		year := g.intIn(MinYear, MaxYear)
		runtime := g.intIn(MinRuntime, MaxRuntime)
		score := g.floatIn(MinIMDBScore, MaxIMDBScore)
		out = append(out, movie.Movie{
			Name:      fmt.Sprintf("%s %d", pick(g.rng, Titles), i+1),
			Year:      &year,
			Genre:     pick(g.rng, Genres),
			Rating:    pick(g.rng, Ratings),
			BoxOffice: g.floatIn(MinBoxOffice, MaxBoxOffice),
			Budget:    g.floatIn(MinBudget, MaxBudget),
			Director:  pick(g.rng, Directors),
			Country:   pick(g.rng, Countries),
			Runtime:   &runtime,
			IMDBScore: &score,
		})
	}
	return out
}

func (g *Generator) intIn(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) floatIn(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func pick(r *rand.Rand, xs []string) string {
	return xs[r.IntN(len(xs))]
}
