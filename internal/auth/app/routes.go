package app

import (
	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/auth/handlers"
	"github.com/sreekarnv/mint/internal/middleware"
)

func (a *App) RegisterRoutes(h *handlers.AuthHandler, tokens *auth.TokenManager) {
	app := a.Router.Group("/auth")
	app.POST("/signup", h.Signup)
	app.POST("/login", h.Login)
	app.GET("/me", middleware.Auth(tokens), h.Me)
}
