package catalog

import (
	"context"
	"strings"
	"time"
)

type Service interface {
	ListMovies(ctx context.Context, f Filter) (MovieList, error)
	GetMovie(ctx context.Context, id string) (Detail, error)
}

// DiscoverQuery is the fully resolved upstream discovery request. GenreID
// zero means no genre constraint.
type DiscoverQuery struct {
	Year    int
	Page    int
	GenreID int
}

type Repository interface {
	Genres(ctx context.Context) ([]Genre, error)
	Discover(ctx context.Context, q DiscoverQuery) (MovieList, error)
	Movie(ctx context.Context, id string) (Detail, error)
}

type Usecase struct {
	r   Repository
	now func() time.Time
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{
		r: r,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ListMovies resolves filter defaults, optionally maps the genre name to
// its upstream identifier and issues one discovery call. The genre lookup
// is best effort: an unmatched name or a failed taxonomy fetch drops the
// filter instead of failing the query.
func (uc *Usecase) ListMovies(ctx context.Context, f Filter) (MovieList, error) {
	q := DiscoverQuery{
		Year: f.Year,
		Page: f.Page,
	}
	if q.Year == 0 {
		q.Year = uc.now().Year()
	}
	if q.Page < 1 {
		q.Page = 1
	}

	if genre := strings.TrimSpace(f.Genre); genre != "" && genre != GenreAll {
		if g, ok := uc.resolveGenre(ctx, genre); ok {
			q.GenreID = g.ID
		}
	}

	return uc.r.Discover(ctx, q)
}

// resolveGenre fetches the taxonomy fresh and returns the first
// case-insensitive name match.
func (uc *Usecase) resolveGenre(ctx context.Context, name string) (Genre, bool) {
	genres, err := uc.r.Genres(ctx)
	if err != nil {
		return Genre{}, false
	}
	for _, g := range genres {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Genre{}, false
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Detail, error) {
	if strings.TrimSpace(id) == "" {
		return Detail{}, ErrMovieIDRequired
	}
	return uc.r.Movie(ctx, id)
}
