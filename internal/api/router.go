package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/banco-aurora-ledger/internal/api/handler"
	"github.com/banco-aurora-ledger/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	customerHandler *handler.CustomerHandler,
	accountHandler *handler.AccountHandler,
	transferHandler *handler.TransferHandler,
	bankHandler *handler.BankHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Customer operations
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
		}

		// Account operations
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.Create)
			accounts.GET("/:id", accountHandler.GetByID)
			accounts.GET("/:id/ledger.csv", accountHandler.ExportLedger)
			accounts.POST("/:id/deposit", accountHandler.Deposit)
			accounts.POST("/:id/withdraw", accountHandler.Withdraw)
		}

		// Transfer operations
		transfers := v1.Group("/transfers")
		{
			transfers.POST("", transferHandler.Create)
		}

		// Bank-wide operations
		v1.POST("/eod", bankHandler.EndOfDay)
		v1.GET("/snapshot", bankHandler.DumpSnapshot)
		v1.POST("/snapshot", bankHandler.LoadSnapshot)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
