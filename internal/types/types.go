package types

import (
	"strings"
	"time"
)

// MediaType discriminates movies from TV series. Catalog ids are only unique
// within a media type, so (ID, MediaType) is the real identity of a title.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// ParseMediaType validates a kind string from a URL or request body.
func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(s) {
	case MediaMovie, MediaTV:
		return MediaType(s), true
	default:
		return "", false
	}
}

// Title is the card-level view of a movie or TV series, normalized across the
// upstream's title/name and release_date/first_air_date field pairs.
type Title struct {
	ID          int       `json:"id"`
	MediaType   MediaType `json:"media_type"`
	Name        string    `json:"name"`
	ReleaseDate string    `json:"release_date,omitempty"`
	VoteAverage float64   `json:"vote_average,omitempty"`
	Overview    string    `json:"overview,omitempty"`
	PosterPath  string    `json:"poster_path,omitempty"` // absolute URL, inline data URI, or empty
}

// Year returns the four-digit year of the release date, or "" when unknown.
func (t Title) Year() string {
	if t.ReleaseDate == "" {
		return ""
	}
	return strings.SplitN(t.ReleaseDate, "-", 2)[0]
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Network struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails extends Title with movie-only fields.
type MovieDetails struct {
	Title
	Runtime int     `json:"runtime,omitempty"`
	Budget  int64   `json:"budget,omitempty"`
	Revenue int64   `json:"revenue,omitempty"`
	Tagline string  `json:"tagline,omitempty"`
	Status  string  `json:"status,omitempty"`
	Genres  []Genre `json:"genres,omitempty"`
}

// SeriesDetails extends Title with series-only fields.
type SeriesDetails struct {
	Title
	NumberOfSeasons  int       `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int       `json:"number_of_episodes,omitempty"`
	Networks         []Network `json:"networks,omitempty"`
	Status           string    `json:"status,omitempty"`
	Genres           []Genre   `json:"genres,omitempty"`
}

// Details is the tagged union returned by detail lookups; exactly one of Movie
// or Series is set, matching MediaType.
type Details struct {
	MediaType MediaType      `json:"media_type"`
	Movie     *MovieDetails  `json:"movie,omitempty"`
	Series    *SeriesDetails `json:"series,omitempty"`
}

// Card returns the shared Title view regardless of which arm is populated.
func (d Details) Card() Title {
	if d.Movie != nil {
		return d.Movie.Title
	}
	if d.Series != nil {
		return d.Series.Title
	}
	return Title{MediaType: d.MediaType}
}

// Bookmark is the persisted subset of a Title's fields. JSON keys match the
// collection format the store writes as a whole.
type Bookmark struct {
	ID          int       `json:"id"`
	MediaType   MediaType `json:"media_type"`
	Name        string    `json:"title"`
	PosterPath  string    `json:"poster_path,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty"`
	Overview    string    `json:"overview,omitempty"`
	VoteAverage float64   `json:"vote_average,omitempty"`
}

type User struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Created  time.Time `json:"created_at"`
	Updated  time.Time `json:"updated_at"`
}

// Request/Response types
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success body of both signup and login.
type AuthResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// PublicUser is the subset of a user record returned to clients.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
