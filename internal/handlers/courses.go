// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saviare/campus-api/internal/appcontext"
	"github.com/saviare/campus-api/internal/repository"
)

// CourseHandlers contains handlers for the course catalog.
type CourseHandlers struct {
	repo *repository.Repository
}

// NewCourses creates a new CourseHandlers instance.
func NewCourses(repo *repository.Repository) *CourseHandlers {
	return &CourseHandlers{repo: repo}
}

// List returns every course with instructor usernames resolved. Sits behind
// the auth guard, so the context always carries a user. The response is a
// bare array; the frontend expects no envelope.
func (h *CourseHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	courses, err := h.repo.ListCourses(ctx)
	if err != nil {
		slog.Error("list_courses_error", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to list courses"})
	}

	user := appcontext.GetUser(ctx)
	slog.Info("courses_listed", "user", user.Username, "count", len(courses))

	return c.JSON(http.StatusOK, courses)
}
