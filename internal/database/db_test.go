// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saviare/campus-api/internal/database"
)

func TestOpen_InMemory(t *testing.T) {
	db, err := database.Open("file:db_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Migrations created both tables.
	var count int64
	err = db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'courses')`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestOpen_UsernameUniqueIndex(t *testing.T) {
	db, err := database.Open("file:db_unique_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('alice', 'h1')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('alice', 'h2')`)
	assert.Error(t, err)
}
