package httpserver

import (
	"net/http"

	"cineseek/catalog"
	"cineseek/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.POST("/fetch-movies", s.handleFetchMovies)
	g.GET("/movies/:id", s.handleGetMovie)
}

// MovieDetailResponse is a movie detail plus the resolved trailer, if any.
type MovieDetailResponse struct {
	catalog.Detail
	Trailer *catalog.Video `json:"trailer,omitempty"`
}

// handleFetchMovies godoc
// @Summary List Movies
// @Description Fetch one page of movies filtered by year and genre name
// @Tags movies
// @Accept json
// @Produce json
// @Param request body FetchMoviesRequest true "Filter"
// @Success 200 {object} catalog.MovieList
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/fetch-movies [post]
func (s *Server) handleFetchMovies(c echo.Context) error {
	if s.CatalogService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie catalog not configured")
	}
	if s.Config.TMDB.APIKey == "" {
		return errs.Errorf(errs.ECONFIG, "TMDB API key not configured")
	}

	var req FetchMoviesRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	list, err := s.CatalogService.ListMovies(c.Request().Context(), req.ToFilter())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// handleGetMovie godoc
// @Summary Movie Detail
// @Description Fetch one movie's full detail including trailer metadata
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} MovieDetailResponse
// @Failure 404 {object} map[string]string
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.CatalogService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie catalog not configured")
	}
	if s.Config.TMDB.APIKey == "" {
		return errs.Errorf(errs.ECONFIG, "TMDB API key not configured")
	}

	detail, err := s.CatalogService.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := MovieDetailResponse{Detail: detail}
	if trailer, ok := detail.Trailer(); ok {
		resp.Trailer = &trailer
	}

	return c.JSON(http.StatusOK, resp)
}
