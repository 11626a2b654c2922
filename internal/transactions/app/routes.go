package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/middleware"
	"github.com/sreekarnv/mint/internal/transactions/handlers"
)

func (a *App) RegisterRoutes(h *handlers.TransactionHandler, tokens *auth.TokenManager) {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	app := a.Router.Group("/transactions")
	app.Use(middleware.Auth(tokens))
	app.POST("/topup", h.TopUp)
	app.POST("/transfer", h.Transfer)
	app.GET("", h.List)
	app.GET("/:id", h.Get)
}
