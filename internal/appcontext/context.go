// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package appcontext provides typed context keys shared across packages.
package appcontext

import (
	"context"

	"github.com/saviare/campus-api/internal/models"
)

// userContextKey is the context key for the authenticated user.
type userContextKey struct{}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns the authenticated user, or nil if not authenticated.
func GetUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userContextKey{}).(*models.User); ok {
		return user
	}
	return nil
}

// IsAuthenticated returns true if the context has an authenticated user.
func IsAuthenticated(ctx context.Context) bool {
	return GetUser(ctx) != nil
}
