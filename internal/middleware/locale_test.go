// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saviare/campus-api/internal/i18n"
	"github.com/saviare/campus-api/internal/middleware"
)

func TestLocale(t *testing.T) {
	require.NoError(t, i18n.Init())

	tests := []struct {
		name           string
		acceptLanguage string
		wantLocale     string
	}{
		{"spanish", "es", "es"},
		{"english", "en-US,en;q=0.9", "en"},
		{"unsupported falls back to spanish", "de", "es"},
		{"empty falls back to spanish", "", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var got string
			e.GET("/", func(c echo.Context) error {
				got = i18n.GetLocale(c.Request().Context())
				return c.NoContent(http.StatusOK)
			}, middleware.Locale())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantLocale, got)
		})
	}
}
