package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdb/internal/catalog"
	"showdb/internal/types"
)

// newCatalogMux mirrors the server's catalog routes, backed by fixture data
// only (no API key).
func newCatalogMux(t *testing.T) *http.ServeMux {
	t.Helper()

	gateway := catalog.NewGateway(catalog.NewClient(""), catalog.DefaultFixtures())
	handler := NewCatalogHandler(gateway)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/trending/{kind}", handler.GetTrending)
	mux.HandleFunc("GET /api/popular/{kind}", handler.GetPopular)
	mux.HandleFunc("GET /api/search", handler.Search)
	mux.HandleFunc("GET /api/similar/{kind}/{id}", handler.GetSimilar)
	mux.HandleFunc("GET /api/{kind}/{id}", handler.GetDetails)
	return mux
}

func doGet(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

type resultsBody struct {
	Results []types.Title `json:"results"`
}

func TestGetTrending(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/trending/movie")
	require.Equal(t, http.StatusOK, rec.Code)

	var body resultsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Results, 12)
}

func TestGetTrendingRejectsBadKind(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/trending/book")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Kind must be 'movie' or 'tv'"}`, rec.Body.String())
}

func TestGetPopularDefaultsPage(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/popular/tv")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []types.Title `json:"results"`
		Page    int           `json:"page"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Page)
	assert.Len(t, body.Results, 11)
}

func TestSearchRequiresQuery(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Search query is required"}`, rec.Body.String())
}

func TestSearchFiltersFixtures(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/search?query=office")
	require.Equal(t, http.StatusOK, rec.Code)

	var body resultsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, "The Office", body.Results[0].Name)
}

func TestGetDetailsFoundAndNotFound(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/movie/550")
	require.Equal(t, http.StatusOK, rec.Code)

	var details types.MovieDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Equal(t, "Fight Club", details.Name)

	missing := doGet(t, mux, "/api/movie/424242")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, `{"message":"Title not found"}`, missing.Body.String())
}

func TestGetDetailsRejectsBadID(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/movie/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid title ID"}`, rec.Body.String())
}

func TestGetSimilarReturnsEmptyListOffline(t *testing.T) {
	mux := newCatalogMux(t)

	rec := doGet(t, mux, "/api/similar/tv/1396")
	require.Equal(t, http.StatusOK, rec.Code)

	var body resultsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Results)
	assert.Empty(t, body.Results)
}
