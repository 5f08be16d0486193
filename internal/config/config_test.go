// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func configFromArgs(t *testing.T, args ...string) (*Config, error) {
	t.Helper()

	var cfg *Config
	var cfgErr error
	cmd := &cli.Command{
		Name:  "test",
		Flags: Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, cfgErr = NewFromCLI(cmd)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return cfg, cfgErr
}

func TestNewFromCLI_Defaults(t *testing.T) {
	cfg, err := configFromArgs(t, "--auth-secret", "test-secret")

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5173", cfg.Server.FrontendURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./data/campus.db", cfg.Database.DSN)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.True(t, cfg.Auth.SeedData)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestNewFromCLI_Overrides(t *testing.T) {
	cfg, err := configFromArgs(t,
		"--auth-secret", "test-secret",
		"--port", "9090",
		"--access-token-ttl", "5m",
		"--seed-data=false",
	)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.False(t, cfg.Auth.SeedData)
}

func TestNewFromCLI_MissingSecret(t *testing.T) {
	_, err := configFromArgs(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth secret is required")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: Config{Auth: AuthConfig{
				Secret:         "s",
				AccessTokenTTL: 15 * time.Minute,
				ResetTokenTTL:  15 * time.Minute,
			}},
		},
		{
			name:    "missing secret",
			cfg:     Config{Auth: AuthConfig{AccessTokenTTL: time.Minute, ResetTokenTTL: time.Minute}},
			wantErr: "auth secret is required",
		},
		{
			name:    "zero access TTL",
			cfg:     Config{Auth: AuthConfig{Secret: "s", ResetTokenTTL: time.Minute}},
			wantErr: "access token TTL must be positive",
		},
		{
			name:    "negative reset TTL",
			cfg:     Config{Auth: AuthConfig{Secret: "s", AccessTokenTTL: time.Minute, ResetTokenTTL: -time.Second}},
			wantErr: "reset token TTL must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
