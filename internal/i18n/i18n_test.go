// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/saviare/campus-api/internal/i18n"
)

func TestT_DefaultsToSpanish(t *testing.T) {
	require.NoError(t, i18n.Init())

	got := i18n.T(context.Background(), "password_reset_button")

	assert.Equal(t, "Restablecer Contraseña", got)
}

func TestT_English(t *testing.T) {
	require.NoError(t, i18n.Init())
	ctx := i18n.WithLocale(context.Background(), language.English)

	got := i18n.T(ctx, "password_reset_button")

	assert.Equal(t, "Reset Password", got)
}

func TestT_UnknownMessageID(t *testing.T) {
	require.NoError(t, i18n.Init())

	got := i18n.T(context.Background(), "no_such_message")

	assert.Equal(t, "no_such_message", got)
}

func TestTData(t *testing.T) {
	require.NoError(t, i18n.Init())
	ctx := i18n.WithLocale(context.Background(), language.Spanish)

	got := i18n.TData(ctx, "password_reset_expiry", map[string]any{"Minutes": 15})

	assert.Equal(t, "Este enlace expirará en 15 minutos.", got)
}

func TestGetLocale(t *testing.T) {
	require.NoError(t, i18n.Init())

	assert.Equal(t, "es", i18n.GetLocale(context.Background()))
	ctx := i18n.WithLocale(context.Background(), language.English)
	assert.Equal(t, "en", i18n.GetLocale(ctx))
}
