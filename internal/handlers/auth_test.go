package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdb/internal/database"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, *sql.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))

	return NewAuthHandler(db), db
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestTestProbe(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	rec := httptest.NewRecorder()
	handler.Test(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Backend working"}`, rec.Body.String())
}

func TestSignupSuccess(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	rec := postJSON(t, handler.Signup, "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Signup successful","user":{"name":"Alice","email":"alice@example.com"}}`,
		rec.Body.String())
}

func TestSignupMissingFields(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	rec := postJSON(t, handler.Signup, "/signup", `{"name":"Alice","email":"alice@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Name, email and password are required"}`, rec.Body.String())
}

func TestSignupInvalidBody(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	rec := postJSON(t, handler.Signup, "/signup", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	first := postJSON(t, handler.Signup, "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(t, handler.Signup, "/signup",
		`{"name":"Other Alice","email":"alice@example.com","password":"different"}`)

	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.JSONEq(t, `{"message":"Email already registered"}`, second.Body.String())
}

func TestLoginSuccess(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	postJSON(t, handler.Signup, "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)

	rec := postJSON(t, handler.Login, "/login",
		`{"email":"alice@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Login successful","user":{"name":"Alice","email":"alice@example.com"}}`,
		rec.Body.String())
}

func TestLoginUnknownEmail(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	rec := postJSON(t, handler.Login, "/login",
		`{"email":"nobody@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Wrong email"}`, rec.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	postJSON(t, handler.Signup, "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)

	rec := postJSON(t, handler.Login, "/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Wrong password"}`, rec.Body.String())
}

func TestAuthResponsesNeverExposePasswords(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	signup := postJSON(t, handler.Signup, "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	login := postJSON(t, handler.Login, "/login",
		`{"email":"alice@example.com","password":"secret"}`)

	assert.NotContains(t, signup.Body.String(), "secret")
	assert.NotContains(t, login.Body.String(), "secret")
	assert.NotContains(t, signup.Body.String(), "password")
	assert.NotContains(t, login.Body.String(), "password")
}
