// Package dataset resolves the working dataset the dashboard renders. Three
// candidates are tried in order: rows bundled with the program, an external
// table fetched once, and synthetic sample movies. The first one that yields
// rows wins; data problems along the way are logged and never returned.
package dataset

import (
	"encoding/json"

	"github.com/zeebo/xxh3"

	"github.com/neymango11/Movie/internal/movie"
)

// Origin records which candidate produced the working dataset.
type Origin string

const (
	OriginEmbedded Origin = "embedded"
	OriginExternal Origin = "external"
	OriginSample   Origin = "sample"
)

// SampleNotice is shown while the dashboard runs on synthetic data.
const SampleNotice = "Movie data file not loaded: showing generated sample data. " +
	"Place movie_data.csv under data/ or point --csv/--url at the real table."

// Dataset is the immutable result of one load. Movies is shared by every
// caller of that load and must not be modified.
type Dataset struct {
	Movies []movie.Movie
	Origin Origin

	// Raw is the number of rows the winning candidate produced and Dropped
	// the number rejected by the quality gate.
	Raw     int
	Dropped int

	// Fingerprint identifies the content of Movies.
	Fingerprint uint64
}

// Notice returns the advisory text for sample data, or "".
func (d Dataset) Notice() string {
	if d.Origin == OriginSample {
		return SampleNotice
	}
	return ""
}

// Fingerprint hashes the movies in order with xxh3. Equal slices always hash
// equal; it is used to tell reloads apart in logs and output.
func Fingerprint(ms []movie.Movie) uint64 {
	h := xxh3.New()
	enc := json.NewEncoder(h)
	for _, m := range ms {
		// Movie has only JSON-safe fields; Encode cannot fail on a hasher.
		_ = enc.Encode(m)
	}
	return h.Sum64()
}
