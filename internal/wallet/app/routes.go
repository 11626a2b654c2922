package app

import (
	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/middleware"
	"github.com/sreekarnv/mint/internal/wallet/handler"
)

func (a *App) RegisterRoutes(h *handler.WalletHandler, tokens *auth.TokenManager) {
	app := a.Router.Group("/wallets")
	app.Use(middleware.Auth(tokens))
	app.GET("/me", h.Get)
}
