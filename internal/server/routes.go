// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package server

import (
	"github.com/labstack/echo/v4"

	"github.com/saviare/campus-api/internal/handlers"
	appmw "github.com/saviare/campus-api/internal/middleware"
	"github.com/saviare/campus-api/internal/repository"
	"github.com/saviare/campus-api/internal/services/auth"
	"github.com/saviare/campus-api/internal/token"
)

// routerDeps holds the dependencies needed to set up routes.
type routerDeps struct {
	repo        *repository.Repository
	authService *auth.Service
	access      *token.AccessCodec
	reset       *token.ResetCodec
	mailer      handlers.Mailer
}

func setupRoutes(e *echo.Echo, deps *routerDeps) {
	h := handlers.New(deps.repo)
	authHandlers := handlers.NewAuth(deps.authService, deps.repo, deps.access, deps.reset, deps.mailer)
	courseHandlers := handlers.NewCourses(deps.repo)

	e.GET("/", h.Home)
	e.GET("/health", h.Health)

	e.POST("/register", authHandlers.Register)
	e.POST("/login", authHandlers.Login)
	e.POST("/forgot-password", authHandlers.ForgotPassword)
	e.POST("/reset-password/:token", authHandlers.ResetPassword)

	guarded := e.Group("", appmw.RequireUser(deps.access, deps.repo))
	guarded.GET("/courses", courseHandlers.List)
}
