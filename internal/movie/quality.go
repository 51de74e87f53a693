package movie

import "math"

// Admit returns, in input order, the movies that may enter the working
// dataset: a positive box office and a known release year. Rejected movies
// are dropped silently. The input slice is not modified.
func Admit(in []Movie) []Movie {
	out, _ := AdmitCount(in)
	return out
}

// AdmitCount is Admit plus the number of dropped movies, for logging.
func AdmitCount(in []Movie) ([]Movie, int) {
	out := make([]Movie, 0, len(in))
	for _, m := range in {
		if admissible(m) {
			out = append(out, m)
		}
	}
	return out, len(in) - len(out)
}

func admissible(m Movie) bool {
	return m.BoxOffice > 0 && !math.IsNaN(m.BoxOffice) && m.Year != nil
}
