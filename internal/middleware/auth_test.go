// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saviare/campus-api/internal/appcontext"
	"github.com/saviare/campus-api/internal/middleware"
	"github.com/saviare/campus-api/internal/models"
	"github.com/saviare/campus-api/internal/repository"
	"github.com/saviare/campus-api/internal/testutil"
	"github.com/saviare/campus-api/internal/token"
)

func newGuardedEcho(t *testing.T, codec *token.AccessCodec, repo *repository.Repository) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		user := appcontext.GetUser(c.Request().Context())
		require.NotNil(t, user)
		return c.JSON(http.StatusOK, map[string]string{"username": user.Username})
	}, middleware.RequireUser(codec, repo))
	return e
}

func doRequest(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireUser_ValidToken(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, repo, "alice", "p@ss1", models.RoleStudent)
	codec := token.NewAccessCodec("test-secret", 15*time.Minute)
	e := newGuardedEcho(t, codec, repo)

	tok, err := codec.Issue(user.ID)
	require.NoError(t, err)

	rec := doRequest(e, "Bearer "+tok)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestRequireUser_MissingHeader(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	codec := token.NewAccessCodec("test-secret", 15*time.Minute)
	e := newGuardedEcho(t, codec, repo)

	rec := doRequest(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing or invalid token")
}

func TestRequireUser_MalformedHeader(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	codec := token.NewAccessCodec("test-secret", 15*time.Minute)
	e := newGuardedEcho(t, codec, repo)

	tests := []struct {
		name   string
		header string
	}{
		{"no scheme", "just-a-token"},
		{"wrong scheme", "Basic abc123"},
		{"empty value", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "missing or invalid token")
		})
	}
}

func TestRequireUser_ExpiredToken(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	user := testutil.NewTestUser(t, repo, "alice", "p@ss1", models.RoleStudent)
	expired := token.NewAccessCodec("test-secret", -time.Minute)
	e := newGuardedEcho(t, token.NewAccessCodec("test-secret", 15*time.Minute), repo)

	tok, err := expired.Issue(user.ID)
	require.NoError(t, err)

	rec := doRequest(e, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token expired - please sign in again")
}

func TestRequireUser_InvalidToken(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	codec := token.NewAccessCodec("test-secret", 15*time.Minute)
	e := newGuardedEcho(t, codec, repo)

	rec := doRequest(e, "Bearer not-a-real-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token - please sign in again")
}

func TestRequireUser_DeletedUser(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	codec := token.NewAccessCodec("test-secret", 15*time.Minute)
	e := newGuardedEcho(t, codec, repo)

	// Valid, unexpired token for a user that never existed. A ghost identity
	// must not reach the handler.
	tok, err := codec.Issue(12345)
	require.NoError(t, err)

	rec := doRequest(e, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token - please sign in again")
}
