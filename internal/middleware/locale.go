// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package middleware

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/saviare/campus-api/internal/i18n"
)

var supported = []language.Tag{
	language.Spanish, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

// Locale resolves the request language from Accept-Language and stores the
// localizer in the request context.
func Locale() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accept := c.Request().Header.Get("Accept-Language")
			tags, _, err := language.ParseAcceptLanguage(accept)
			if err != nil || len(tags) == 0 {
				tags = []language.Tag{language.Spanish}
			}
			// Use the index: Match may decorate the returned tag with
			// request extensions, and the bundle only knows the base tags.
			_, idx, _ := matcher.Match(tags...)

			ctx := i18n.WithLocale(c.Request().Context(), supported[idx])
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
