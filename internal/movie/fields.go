package movie

// Source keys accepted for each canonical field, in lookup order. The
// capitalized header form used by the published CSV comes first, then the
// camelCase form used by the bundled JSON, then a plain lowercase form.
var (
	KeysName      = []string{"Name", "name"}
	KeysYear      = []string{"Year", "year"}
	KeysGenre     = []string{"Genre", "genre"}
	KeysRating    = []string{"Rating", "rating"}
	KeysBoxOffice = []string{"BoxOffice", "boxOffice", "boxoffice", "box_office"}
	KeysBudget    = []string{"Budget", "budget"}
	KeysDirector  = []string{"Director", "director"}
	KeysCountry   = []string{"Country", "country"}
	KeysRuntime   = []string{"Runtime", "runtime"}
	KeysIMDBScore = []string{"IMDB_Score", "imdbScore", "imdb_score", "imdbscore"}
)

// Header is the column order used when movies are written back out as CSV.
var Header = []string{
	"Name", "Year", "Genre", "Rating", "BoxOffice",
	"Budget", "Director", "Country", "Runtime", "IMDB_Score",
}
