// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saviare/campus-api/internal/repository"
	"github.com/saviare/campus-api/internal/services/auth"
	"github.com/saviare/campus-api/internal/token"
)

// Mailer delivers the password reset link. The handlers only supply the
// token; they do not care how (or in which language) it reaches the user.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetToken string) error
}

// AuthHandlers contains handlers for registration, login and password reset.
type AuthHandlers struct {
	service *auth.Service
	repo    *repository.Repository
	access  *token.AccessCodec
	reset   *token.ResetCodec
	mailer  Mailer
}

// NewAuth creates a new AuthHandlers instance.
func NewAuth(service *auth.Service, repo *repository.Repository, access *token.AccessCodec, reset *token.ResetCodec, mailer Mailer) *AuthHandlers {
	return &AuthHandlers{
		service: service,
		repo:    repo,
		access:  access,
		reset:   reset,
		mailer:  mailer,
	}
}

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new account. The role defaults to student.
func (h *AuthHandlers) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "username and password are required"})
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return c.JSON(http.StatusConflict, map[string]string{"msg": "user already exists"})
		}
		slog.Error("register_error", "username", req.Username, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to create user"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"msg":  "user " + user.Username + " registered as " + user.Role,
		"role": user.Role,
	})
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a fresh access token.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
	}

	user, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "invalid credentials"})
		}
		slog.Error("login_error", "username", req.Username, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to log in"})
	}

	accessToken, err := h.access.Issue(user.ID)
	if err != nil {
		slog.Error("token_issue_error", "user_id", user.ID, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to issue token"})
	}

	return c.JSON(http.StatusOK, map[string]string{"access_token": accessToken})
}

// ForgotPasswordRequest is the request body for requesting a reset link.
type ForgotPasswordRequest struct {
	Username string `json:"username"`
}

// ForgotPassword issues a reset token for a known username and mails the
// link. Unknown usernames get a 404; the login path stays non-distinguishing
// instead.
func (h *AuthHandlers) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
	}

	user, err := h.repo.GetUserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"msg": "user not found"})
		}
		slog.Error("forgot_password_error", "username", req.Username, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to process request"})
	}

	resetToken, err := h.reset.Issue(user.Username)
	if err != nil {
		slog.Error("reset_token_issue_error", "username", user.Username, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to issue reset token"})
	}

	// The username doubles as the notification address.
	if err := h.mailer.SendPasswordReset(c.Request().Context(), user.Username, resetToken); err != nil {
		slog.Error("reset_email_error", "username", user.Username, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to send recovery email"})
	}

	slog.Info("reset_email_sent", "username", user.Username)
	return c.JSON(http.StatusOK, map[string]string{"msg": "recovery email sent, check your inbox"})
}

// ResetPasswordRequest is the request body for confirming a reset.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword verifies the path-embedded reset token and overwrites the
// password hash. The token stays valid until its window closes; there is no
// server-side consumption record.
func (h *AuthHandlers) ResetPassword(c echo.Context) error {
	username, err := h.reset.Verify(c.Param("token"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "link invalid or expired"})
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "password is required"})
	}

	if err := h.service.ResetPassword(c.Request().Context(), username, req.Password); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"msg": "user not found"})
		}
		slog.Error("reset_password_error", "username", username, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "failed to update password"})
	}

	return c.JSON(http.StatusOK, map[string]string{"msg": "password updated successfully"})
}
