// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetCodec_IssueAndVerify(t *testing.T) {
	codec := NewResetCodec("test-secret", 15*time.Minute)

	tok, err := codec.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestResetCodec_MultiUseWithinWindow(t *testing.T) {
	codec := NewResetCodec("test-secret", 15*time.Minute)

	tok, err := codec.Issue("alice")
	require.NoError(t, err)

	// Reset tokens carry no consumption record: the same token verifies
	// any number of times until the window closes.
	for range 2 {
		username, err := codec.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	}
}

func TestResetCodec_Expired(t *testing.T) {
	codec := NewResetCodec("test-secret", time.Second)

	tok, err := codec.Issue("alice")
	require.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestResetCodec_Tampered(t *testing.T) {
	codec := NewResetCodec("test-secret", 15*time.Minute)

	tok, err := codec.Issue("alice")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"flipped", tok[:len(tok)-2] + "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidOrExpired)
		})
	}
}

func TestResetCodec_WrongSecret(t *testing.T) {
	codec := NewResetCodec("test-secret", 15*time.Minute)
	other := NewResetCodec("other-secret", 15*time.Minute)

	tok, err := codec.Issue("alice")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestResetCodec_RejectsAccessToken(t *testing.T) {
	access := NewAccessCodec("shared-secret", 15*time.Minute)
	reset := NewResetCodec("shared-secret", 15*time.Minute)

	tok, err := access.Issue(42)
	require.NoError(t, err)

	_, err = reset.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}
