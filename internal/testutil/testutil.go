// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"

	"github.com/saviare/campus-api/internal/database"
	"github.com/saviare/campus-api/internal/models"
	"github.com/saviare/campus-api/internal/repository"
	"github.com/saviare/campus-api/internal/services/auth"
)

// NewTestDB creates an in-memory SQLite database for tests. The shared-cache
// DSN keeps all pooled connections on the same database; the random name
// isolates parallel tests from each other.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	repo := repository.New(db)
	return db, repo
}

// NewTestUser creates a user with the given password already hashed.
func NewTestUser(t *testing.T, repo *repository.Repository, username, password, role string) *models.User {
	t.Helper()
	ctx := context.Background()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user, err := repo.CreateUser(ctx, username, hash, role)
	require.NoError(t, err)
	return user
}

// NewTestCourse creates a course for the given instructor.
func NewTestCourse(t *testing.T, repo *repository.Repository, title string, instructorID int64) *models.Course {
	t.Helper()
	course, err := repo.CreateCourse(context.Background(), title, "description of "+title, instructorID)
	require.NoError(t, err)
	return course
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}
