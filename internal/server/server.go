// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package server wires configuration, storage, services and routes together
// and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"

	"github.com/saviare/campus-api/internal/config"
	"github.com/saviare/campus-api/internal/database"
	"github.com/saviare/campus-api/internal/handlers"
	"github.com/saviare/campus-api/internal/i18n"
	"github.com/saviare/campus-api/internal/repository"
	"github.com/saviare/campus-api/internal/services/auth"
	"github.com/saviare/campus-api/internal/services/email"
	"github.com/saviare/campus-api/internal/token"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.NewFromCLI(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"frontend_url", cfg.Server.FrontendURL,
	)

	// Database
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	// i18n
	if initErr := i18n.Init(); initErr != nil {
		return fmt.Errorf("failed to init i18n: %w", initErr)
	}

	// Repository and services
	repo := repository.New(db)
	authService := auth.NewService(repo)
	access := token.NewAccessCodec(cfg.Auth.Secret, cfg.Auth.AccessTokenTTL)
	reset := token.NewResetCodec(cfg.Auth.Secret, cfg.Auth.ResetTokenTTL)

	var mailer handlers.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = email.NewService(&cfg.SMTP, cfg.Server.FrontendURL, cfg.Auth.ResetTokenTTL)
		if err != nil {
			return fmt.Errorf("failed to create email service: %w", err)
		}
	} else {
		slog.Warn("smtp not configured, reset links will be logged instead")
		mailer = &logMailer{frontendURL: cfg.Server.FrontendURL}
	}

	// Seed data
	if cfg.Auth.SeedData {
		if seedErr := seedData(ctx, repo); seedErr != nil {
			return fmt.Errorf("failed to seed data: %w", seedErr)
		}
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	setupMiddleware(e, cfg)
	setupRoutes(e, &routerDeps{
		repo:        repo,
		authService: authService,
		access:      access,
		reset:       reset,
		mailer:      mailer,
	})

	return startWithGracefulShutdown(ctx, e, cfg)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("server running", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("shutting down server", "reason", ctx.Err())
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

// logMailer stands in for SMTP in development: the reset link goes to the
// log instead of an inbox.
type logMailer struct {
	frontendURL string
}

func (m *logMailer) SendPasswordReset(_ context.Context, to, resetToken string) error {
	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimSuffix(m.frontendURL, "/"), resetToken)
	slog.Info("reset_link", "to", to, "link", link)
	return nil
}
