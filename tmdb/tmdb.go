// Package tmdb is the catalog adapter for The Movie Database API.
package tmdb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cineseek/catalog"
	"cineseek/errs"

	"github.com/go-resty/resty/v2"
)

const (
	posterSize   = "w500"
	backdropSize = "w1280"
)

type Options struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
}

type Client struct {
	http         *resty.Client
	apiKey       string
	imageBaseURL string
}

func NewClient(opts Options) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(opts.BaseURL).
			SetTimeout(30 * time.Second).
			SetQueryParam("api_key", opts.APIKey),
		apiKey:       opts.APIKey,
		imageBaseURL: opts.ImageBaseURL,
	}
}

// Configured reports whether an API key is present. Callers gate requests
// on it so a missing credential fails before any network call.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type genreListResponse struct {
	Genres []catalog.Genre `json:"genres"`
}

type discoverItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
}

type discoverResponse struct {
	Results    []discoverItem `json:"results"`
	TotalPages int            `json:"total_pages"`
}

type movieResponse struct {
	ID                  int                         `json:"id"`
	Title               string                      `json:"title"`
	Overview            string                      `json:"overview"`
	PosterPath          string                      `json:"poster_path"`
	BackdropPath        string                      `json:"backdrop_path"`
	ReleaseDate         string                      `json:"release_date"`
	VoteAverage         float64                     `json:"vote_average"`
	Runtime             int                         `json:"runtime"`
	Genres              []catalog.Genre             `json:"genres"`
	Budget              int64                       `json:"budget"`
	Revenue             int64                       `json:"revenue"`
	Status              string                      `json:"status"`
	OriginalLanguage    string                      `json:"original_language"`
	ProductionCompanies []catalog.ProductionCompany `json:"production_companies"`
	Videos              struct {
		Results []catalog.Video `json:"results"`
	} `json:"videos"`
}

func (c *Client) Genres(ctx context.Context) ([]catalog.Genre, error) {
	var out genreListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/genre/movie/list")
	if err != nil {
		return nil, fmt.Errorf("tmdb: fetch genre list: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, errs.Errorf(errs.EUPSTREAM, "tmdb: genre list returned status %d", resp.StatusCode())
	}
	return out.Genres, nil
}

func (c *Client) Discover(ctx context.Context, q catalog.DiscoverQuery) (catalog.MovieList, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"year":    strconv.Itoa(q.Year),
			"page":    strconv.Itoa(q.Page),
			"sort_by": "popularity.desc",
		}).
		SetResult(&discoverResponse{})
	if q.GenreID != 0 {
		req.SetQueryParam("with_genres", strconv.Itoa(q.GenreID))
	}

	resp, err := req.Get("/discover/movie")
	if err != nil {
		return catalog.MovieList{}, fmt.Errorf("tmdb: discover movies: %w", err)
	}
	if !resp.IsSuccess() {
		return catalog.MovieList{}, errs.Errorf(errs.EUPSTREAM, "tmdb: discover returned status %d", resp.StatusCode())
	}

	out := resp.Result().(*discoverResponse)
	return c.normalize(*out, q.Year), nil
}

func (c *Client) Movie(ctx context.Context, id string) (catalog.Detail, error) {
	var out movieResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("append_to_response", "videos").
		SetResult(&out).
		Get("/movie/" + id)
	if err != nil {
		return catalog.Detail{}, fmt.Errorf("tmdb: fetch movie %s: %w", id, err)
	}
	if resp.StatusCode() == 404 {
		return catalog.Detail{}, catalog.ErrMovieNotFound
	}
	if !resp.IsSuccess() {
		return catalog.Detail{}, errs.Errorf(errs.EUPSTREAM, "tmdb: movie returned status %d", resp.StatusCode())
	}

	return catalog.Detail{
		ID:                  strconv.Itoa(out.ID),
		Title:               out.Title,
		Overview:            out.Overview,
		PosterURL:           c.imageURL(posterSize, out.PosterPath),
		BackdropURL:         c.imageURL(backdropSize, out.BackdropPath),
		ReleaseDate:         out.ReleaseDate,
		VoteAverage:         out.VoteAverage,
		Runtime:             out.Runtime,
		Genres:              out.Genres,
		Budget:              out.Budget,
		Revenue:             out.Revenue,
		Status:              out.Status,
		OriginalLanguage:    out.OriginalLanguage,
		ProductionCompanies: out.ProductionCompanies,
		Videos:              out.Videos.Results,
	}, nil
}

// normalize maps upstream items into movie summaries. A missing title
// becomes "Unknown Title", a missing poster path stays an empty URL and a
// missing or unparseable release date falls back to the query year.
func (c *Client) normalize(resp discoverResponse, queryYear int) catalog.MovieList {
	movies := make([]catalog.Movie, 0, len(resp.Results))
	for _, item := range resp.Results {
		title := item.Title
		if title == "" {
			title = catalog.UnknownTitle
		}

		year := queryYear
		if len(item.ReleaseDate) >= 4 {
			if parsed, err := strconv.Atoi(item.ReleaseDate[:4]); err == nil {
				year = parsed
			}
		}

		movies = append(movies, catalog.Movie{
			ID:          strconv.Itoa(item.ID),
			Title:       title,
			PosterURL:   c.imageURL(posterSize, item.PosterPath),
			ReleaseYear: year,
		})
	}

	totalPages := resp.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}

	return catalog.MovieList{
		Movies:     movies,
		TotalPages: totalPages,
	}
}

func (c *Client) imageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", c.imageBaseURL, size, path)
}
