// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package handlers contains the HTTP handlers. All failures are converted
// to a JSON message plus a status code here; nothing is retried and nothing
// is fatal to the process.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saviare/campus-api/internal/repository"
)

// Handlers contains the unauthenticated utility handlers.
type Handlers struct {
	repo *repository.Repository
}

// New creates a new Handlers instance.
func New(repo *repository.Repository) *Handlers {
	return &Handlers{repo: repo}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Home returns the welcome message.
func (h *Handlers) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "¡Bienvenido a la API de Saviare!",
	})
}
