package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/greencandle/dispatch-core/internal/api/middleware"
	"github.com/greencandle/dispatch-core/internal/store"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, s store.Store, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Payment provider callbacks (signature-verified, no version prefix)
	router.POST("/webhooks/stripe", handler.StripeWebhook)
	router.POST("/webhooks/factoring", handler.FactoringWebhook)

	// Driver endpoints (Scout key authentication)
	v1 := router.Group("/api/v1", middleware.DriverAuth(s))
	{
		// Scout extension
		v1.POST("/ingest/loads", handler.IngestLoads)
		v1.POST("/scout/heartbeat", handler.ScoutHeartbeat)

		// Negotiations
		v1.POST("/negotiations", handler.StartNegotiation)
		v1.POST("/negotiations/counter", handler.SendCounter)
		v1.GET("/negotiations/:id", handler.GetNegotiation)
		v1.POST("/negotiations/:id/confirm", handler.ConfirmNegotiation)
		v1.POST("/negotiations/:id/reject", handler.RejectNegotiation)

		// Auto-Pilot
		v1.PUT("/autopilot/:load_id", handler.ConfigureAutopilot)

		// Rewards ledger
		v1.GET("/ledger/balances", handler.GetBalances)
		v1.POST("/ledger/reinvest", handler.Reinvest)
		v1.POST("/ledger/card-transfers", handler.TransferToCard)
		v1.GET("/ledger/card", handler.GetDebitCard)
		v1.POST("/ledger/card", handler.RequestDebitCard)
		v1.POST("/claims", handler.CreateClaim)

		// Alerts
		v1.GET("/notifications", handler.ListNotifications)
		v1.POST("/notifications/:id/read", handler.MarkNotificationRead)
	}

	// Back-office endpoints (admin API key authentication)
	admin := router.Group("/api/v1/admin", middleware.AdminAuth(authCfg))
	{
		admin.POST("/drivers", handler.CreateDriver)

		admin.POST("/burn-batches", handler.CreateBurnBatch)
		admin.GET("/burn-batches", handler.ListBurnBatches)
		admin.POST("/burn-batches/:id/reserve", handler.ReserveBurnBatch)
		admin.POST("/burn-batches/:id/execute", handler.ExecuteBurnBatch)
		admin.GET("/treasury/stats", handler.GetTreasuryStats)
		admin.PUT("/treasury/wallets", handler.RegisterTreasuryWallet)
		admin.GET("/treasury/wallets", handler.ListTreasuryWallets)

		admin.POST("/negotiations/:id/mark-won", handler.MarkNegotiationWon)
		admin.POST("/negotiations/:id/mark-replied", handler.MarkNegotiationReplied)

		admin.GET("/claims", handler.ListClaims)
		admin.POST("/claims/:id/decide", handler.DecideClaim)
		admin.POST("/claims/:id/paid", handler.MarkClaimPaid)

		admin.POST("/cards/:mc/status", handler.SetCardStatus)
	}
}
