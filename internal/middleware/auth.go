// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package middleware contains the request-level guards and decorators.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saviare/campus-api/internal/appcontext"
	"github.com/saviare/campus-api/internal/models"
	"github.com/saviare/campus-api/internal/token"
)

// UserLoader resolves a verified token's user identifier to an account.
type UserLoader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// AccessVerifier verifies an access token and returns the embedded user id.
type AccessVerifier interface {
	Verify(tokenString string) (int64, error)
}

// RequireUser gates a route behind bearer-token authentication: it extracts
// the credential from the Authorization header, verifies it, resolves the
// user and places it in the request context. A verified token whose user no
// longer exists is rejected; handlers behind this guard always see a
// concrete user.
func RequireUser(codec AccessVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
			}

			userID, err := codec.Verify(raw)
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, "token expired - please sign in again")
			case err != nil:
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token - please sign in again")
			}

			user, err := users.GetUserByID(c.Request().Context(), userID)
			if err != nil {
				slog.Warn("auth_user_missing", "user_id", userID)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token - please sign in again")
			}

			ctx := appcontext.WithUser(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// bearerToken extracts the credential from an Authorization header value.
func bearerToken(header string) (string, bool) {
	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
