package catalog

import "cineseek/errs"

var (
	ErrMovieIDRequired = errs.Errorf(errs.EINVALID, "catalog: movie id required")
	ErrMovieNotFound   = errs.Errorf(errs.ENOTFOUND, "movie not found")
)

// GenreAll is the sentinel the front end sends when no genre filter is
// active.
const GenreAll = "All"

// UnknownTitle replaces a missing title in upstream results.
const UnknownTitle = "Unknown Title"

// Filter is a listing request as submitted by the client. Zero values
// mean "absent": Year defaults to the current calendar year and Page to 1.
type Filter struct {
	Year  int    `json:"year"`
	Page  int    `json:"page"`
	Genre string `json:"genre"`
}

// Movie is one normalized movie summary. PosterURL is empty when the
// upstream result has no poster path; it is never a broken URL.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PosterURL   string `json:"posterUrl,omitempty"`
	ReleaseYear int    `json:"releaseYear"`
}

// MovieList is one page of results. It is rebuilt on every call and never
// merged with a previous page.
type MovieList struct {
	Movies     []Movie `json:"movies"`
	TotalPages int     `json:"totalPages"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
	Site string `json:"site"`
}

type ProductionCompany struct {
	Name string `json:"name"`
}

// Detail is the full record for a single movie, including embedded
// trailer metadata.
type Detail struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Overview            string              `json:"overview"`
	PosterURL           string              `json:"posterUrl,omitempty"`
	BackdropURL         string              `json:"backdropUrl,omitempty"`
	ReleaseDate         string              `json:"releaseDate"`
	VoteAverage         float64             `json:"voteAverage"`
	Runtime             int                 `json:"runtime"`
	Genres              []Genre             `json:"genres"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	Status              string              `json:"status"`
	OriginalLanguage    string              `json:"originalLanguage"`
	ProductionCompanies []ProductionCompany `json:"productionCompanies"`
	Videos              []Video             `json:"videos"`
}

// Trailer returns the first YouTube trailer, if any.
func (d Detail) Trailer() (Video, bool) {
	for _, v := range d.Videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return v, true
		}
	}
	return Video{}, false
}
