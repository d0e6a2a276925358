// Package browse models the movie list view: the filter state, its
// loading/success/error transitions and the per-card poster fallback.
// It is pure state; callers run the fetches the session asks for and feed
// the outcomes back through Apply.
package browse

import "cineseek/catalog"

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

// Request is one fetch the session wants issued. The token increases
// monotonically; only the most recently issued token may update the
// session, so a slow superseded fetch can never overwrite newer state.
type Request struct {
	Token  uint64
	Filter catalog.Filter
}

// Session holds the view state for one movie list. The filter is replaced
// wholesale on every change and a change of year or genre always restarts
// pagination at page 1.
type Session struct {
	filter catalog.Filter
	state  State
	movies []catalog.Movie
	errMsg string
	token  uint64
}

func NewSession() *Session {
	return &Session{
		filter: catalog.Filter{Page: 1, Genre: catalog.GenreAll},
	}
}

func (s *Session) State() State            { return s.state }
func (s *Session) Filter() catalog.Filter  { return s.filter }
func (s *Session) Movies() []catalog.Movie { return s.movies }
func (s *Session) ErrorMessage() string    { return s.errMsg }

// Empty reports the distinct "no results" indication: a successful fetch
// that returned nothing.
func (s *Session) Empty() bool {
	return s.state == StateSuccess && len(s.movies) == 0
}

// Start issues the initial fetch.
func (s *Session) Start() Request {
	return s.fire()
}

// SetYear replaces the year filter and restarts pagination. Setting the
// current value fires nothing.
func (s *Session) SetYear(year int) (Request, bool) {
	if year == s.filter.Year {
		return Request{}, false
	}
	s.filter.Year = year
	s.filter.Page = 1
	return s.fire(), true
}

// SetGenre replaces the genre filter and restarts pagination. Setting the
// current value fires nothing.
func (s *Session) SetGenre(genre string) (Request, bool) {
	if genre == s.filter.Genre {
		return Request{}, false
	}
	s.filter.Genre = genre
	s.filter.Page = 1
	return s.fire(), true
}

// NextPage advances by exactly one page. No upper bound is enforced here;
// past the last page the gateway returns an empty list.
func (s *Session) NextPage() Request {
	s.filter.Page++
	return s.fire()
}

// PrevPage goes back one page, flooring at 1. At page 1 it is a no-op and
// fires nothing.
func (s *Session) PrevPage() (Request, bool) {
	if s.filter.Page <= 1 {
		s.filter.Page = 1
		return Request{}, false
	}
	s.filter.Page--
	return s.fire(), true
}

// Retry re-issues the current filter unchanged.
func (s *Session) Retry() Request {
	return s.fire()
}

func (s *Session) fire() Request {
	s.token++
	s.state = StateLoading
	return Request{Token: s.token, Filter: s.filter}
}

// Apply delivers a fetch outcome. Results whose token is not the latest
// issued are discarded and leave the session untouched. An error clears
// the movie list so stale results are never shown next to an error.
func (s *Session) Apply(token uint64, list catalog.MovieList, err error) bool {
	if token != s.token {
		return false
	}
	if err != nil {
		s.state = StateError
		s.errMsg = err.Error()
		s.movies = nil
		return true
	}
	s.state = StateSuccess
	s.errMsg = ""
	s.movies = list.Movies
	return true
}

// Card is the render model for one movie summary. A poster that is absent
// or failed to load once stays a placeholder for the card's lifetime; the
// original URL is never retried.
type Card struct {
	movie        catalog.Movie
	posterFailed bool
}

func NewCard(m catalog.Movie) *Card {
	return &Card{movie: m}
}

func (c *Card) Title() string    { return c.movie.Title }
func (c *Card) ReleaseYear() int { return c.movie.ReleaseYear }

// PosterSource returns the poster URL to load, or false when the
// placeholder should be rendered instead.
func (c *Card) PosterSource() (string, bool) {
	if c.movie.PosterURL == "" || c.posterFailed {
		return "", false
	}
	return c.movie.PosterURL, true
}

// MarkPosterFailed records an image load failure.
func (c *Card) MarkPosterFailed() {
	c.posterFailed = true
}
