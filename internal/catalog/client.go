package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"showdb/internal/types"
)

// ImageBaseURL is prepended to relative poster paths returned by the upstream.
const ImageBaseURL = "https://image.tmdb.org/t/p/w500"

// Client is a typed client for the upstream catalog API.
type Client struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

// StatusError reports a non-OK response from the upstream API so callers can
// tell an authentication denial apart from transient failures.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

// IsAuthDenied reports whether err carries an upstream 401.
func IsAuthDenied(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusUnauthorized
}

// Upstream response types
type listResponse struct {
	Page         int           `json:"page"`
	Results      []remoteTitle `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// remoteTitle covers both movie and tv result shapes; movies populate
// title/release_date, series populate name/first_air_date.
type remoteTitle struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	MediaType    string  `json:"media_type"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   *string `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
	Overview     string  `json:"overview"`
}

type remoteMovieDetails struct {
	remoteTitle
	Runtime int           `json:"runtime"`
	Budget  int64         `json:"budget"`
	Revenue int64         `json:"revenue"`
	Tagline string        `json:"tagline"`
	Status  string        `json:"status"`
	Genres  []types.Genre `json:"genres"`
}

type remoteSeriesDetails struct {
	remoteTitle
	NumberOfSeasons  int             `json:"number_of_seasons"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	Networks         []types.Network `json:"networks"`
	Status           string          `json:"status"`
	Genres           []types.Genre   `json:"genres"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: "https://api.themoviedb.org/3",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// HasCredentials reports whether an API key is configured.
func (c *Client) HasCredentials() bool {
	return c.APIKey != ""
}

func (c *Client) makeRequest(endpoint string, params map[string]string) (*http.Response, error) {
	u, err := url.Parse(c.BaseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	query := u.Query()
	query.Set("api_key", c.APIKey)

	for key, value := range params {
		query.Set(key, value)
	}

	u.RawQuery = query.Encode()

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	return resp, nil
}

func (c *Client) getList(endpoint string, params map[string]string) (*listResponse, error) {
	resp, err := c.makeRequest(endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	return &list, nil
}

// Trending fetches this week's trending titles for the given kind.
func (c *Client) Trending(kind types.MediaType) ([]types.Title, error) {
	list, err := c.getList(fmt.Sprintf("/trending/%s/week", kind), nil)
	if err != nil {
		return nil, fmt.Errorf("trending request failed: %w", err)
	}
	return normalizeAll(list.Results, kind), nil
}

// Popular fetches a page of popular titles for the given kind.
func (c *Client) Popular(kind types.MediaType, page int) ([]types.Title, error) {
	if page <= 0 {
		page = 1
	}

	list, err := c.getList(fmt.Sprintf("/%s/popular", kind), map[string]string{
		"page": strconv.Itoa(page),
	})
	if err != nil {
		return nil, fmt.Errorf("popular request failed: %w", err)
	}
	return normalizeAll(list.Results, kind), nil
}

// SearchMulti searches movies and series in one call. Results of other media
// types (people, collections) are dropped.
func (c *Client) SearchMulti(query string) ([]types.Title, error) {
	list, err := c.getList("/search/multi", map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	var titles []types.Title
	for _, r := range list.Results {
		kind, ok := types.ParseMediaType(r.MediaType)
		if !ok {
			continue
		}
		titles = append(titles, r.normalize(kind))
	}
	return titles, nil
}

// MovieDetails fetches full details for one movie.
func (c *Client) MovieDetails(id int) (*types.MovieDetails, error) {
	resp, err := c.makeRequest(fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("movie details request failed: %w", err)
	}
	defer resp.Body.Close()

	var raw remoteMovieDetails
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode movie details: %w", err)
	}

	return &types.MovieDetails{
		Title:   raw.normalize(types.MediaMovie),
		Runtime: raw.Runtime,
		Budget:  raw.Budget,
		Revenue: raw.Revenue,
		Tagline: raw.Tagline,
		Status:  raw.Status,
		Genres:  raw.Genres,
	}, nil
}

// SeriesDetails fetches full details for one TV series.
func (c *Client) SeriesDetails(id int) (*types.SeriesDetails, error) {
	resp, err := c.makeRequest(fmt.Sprintf("/tv/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("series details request failed: %w", err)
	}
	defer resp.Body.Close()

	var raw remoteSeriesDetails
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode series details: %w", err)
	}

	return &types.SeriesDetails{
		Title:            raw.normalize(types.MediaTV),
		NumberOfSeasons:  raw.NumberOfSeasons,
		NumberOfEpisodes: raw.NumberOfEpisodes,
		Networks:         raw.Networks,
		Status:           raw.Status,
		Genres:           raw.Genres,
	}, nil
}

// Similar fetches titles similar to the given one.
func (c *Client) Similar(kind types.MediaType, id int) ([]types.Title, error) {
	list, err := c.getList(fmt.Sprintf("/%s/%d/similar", kind, id), nil)
	if err != nil {
		return nil, fmt.Errorf("similar request failed: %w", err)
	}
	return normalizeAll(list.Results, kind), nil
}

// normalize collapses the upstream's title/name and date field pairs into the
// shared Title shape and expands relative poster paths to absolute URLs.
func (r remoteTitle) normalize(kind types.MediaType) types.Title {
	name := r.Title
	if name == "" {
		name = r.Name
	}

	date := r.ReleaseDate
	if date == "" {
		date = r.FirstAirDate
	}

	poster := ""
	if r.PosterPath != nil {
		poster = PosterURL(*r.PosterPath)
	}

	return types.Title{
		ID:          r.ID,
		MediaType:   kind,
		Name:        name,
		ReleaseDate: date,
		VoteAverage: r.VoteAverage,
		Overview:    r.Overview,
		PosterPath:  poster,
	}
}

func normalizeAll(raw []remoteTitle, kind types.MediaType) []types.Title {
	titles := make([]types.Title, len(raw))
	for i, r := range raw {
		titles[i] = r.normalize(kind)
	}
	return titles
}

// PosterURL expands a relative poster path to a full image URL. Absolute URLs
// and inline data URIs pass through unchanged.
func PosterURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") || strings.HasPrefix(path, "data:") {
		return path
	}
	return ImageBaseURL + path
}
