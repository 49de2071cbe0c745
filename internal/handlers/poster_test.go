package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPoster(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	NewPosterHandler().GetPoster(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetPosterRendersSVG(t *testing.T) {
	rec := getPoster(t, "/api/poster?title=Fight+Club&year=1999")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=31536000")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<svg"))
	assert.Contains(t, body, "Fight Club")
	assert.Contains(t, body, "1999")
}

func TestGetPosterRequiresTitle(t *testing.T) {
	rec := getPoster(t, "/api/poster")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Title is required"}`, rec.Body.String())
}

func TestGetPosterIsDeterministic(t *testing.T) {
	first := getPoster(t, "/api/poster?title=Inception&year=2010")
	second := getPoster(t, "/api/poster?title=Inception&year=2010")

	assert.Equal(t, first.Body.String(), second.Body.String())
}
