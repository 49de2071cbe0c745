package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaType(t *testing.T) {
	kind, ok := ParseMediaType("movie")
	assert.True(t, ok)
	assert.Equal(t, MediaMovie, kind)

	kind, ok = ParseMediaType("tv")
	assert.True(t, ok)
	assert.Equal(t, MediaTV, kind)

	_, ok = ParseMediaType("book")
	assert.False(t, ok)
	_, ok = ParseMediaType("")
	assert.False(t, ok)
}

func TestTitleYear(t *testing.T) {
	assert.Equal(t, "1999", Title{ReleaseDate: "1999-10-15"}.Year())
	assert.Equal(t, "2008", Title{ReleaseDate: "2008"}.Year())
	assert.Equal(t, "", Title{}.Year())
}

func TestDetailsCard(t *testing.T) {
	movie := Details{
		MediaType: MediaMovie,
		Movie:     &MovieDetails{Title: Title{ID: 550, Name: "Fight Club"}},
	}
	assert.Equal(t, "Fight Club", movie.Card().Name)

	series := Details{
		MediaType: MediaTV,
		Series:    &SeriesDetails{Title: Title{ID: 1396, Name: "Breaking Bad"}},
	}
	assert.Equal(t, "Breaking Bad", series.Card().Name)

	empty := Details{MediaType: MediaMovie}
	assert.Equal(t, MediaMovie, empty.Card().MediaType)
}

func TestUserJSONHidesPassword(t *testing.T) {
	raw, err := json.Marshal(User{Name: "Alice", Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
}
