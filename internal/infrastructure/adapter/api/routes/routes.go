package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/domain/port/persistence"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/handler"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the API handlers for route registration
type Handlers struct {
	Auth        *handler.AuthHandler
	Account     *handler.AccountHandler
	Transaction *handler.TransactionHandler
	Transfer    *handler.TransferHandler
	Admin       *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	tokens coreport.TokenProvider,
	users persistence.UserRepository,
	logger coreport.Logger,
	health gin.HandlerFunc,
) {
	router.GET("/health", health)

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register", handlers.Auth.Register)
		authRoutes.POST("/login", handlers.Auth.Login)
	}

	requireAuth := middleware.RequireAuth(tokens, users, logger)
	requireAdmin := middleware.RequireAdmin(logger)

	api := router.Group("/api", requireAuth)
	{
		api.GET("/accounts", handlers.Account.ListAccounts)

		api.GET("/transactions", handlers.Transaction.ListTransactions)
		api.POST("/transactions", handlers.Transaction.PostTransaction)

		api.POST("/transfers", handlers.Transfer.CreateTransfer)
		api.GET("/transfers/mine", handlers.Transfer.ListMine)

		api.POST("/admin/setup/promote", handlers.Admin.Promote)

		adminRoutes := api.Group("", requireAdmin)
		{
			adminRoutes.GET("/transfers/pending", handlers.Transfer.ListPending)
			adminRoutes.POST("/transfers/:id/approve", handlers.Transfer.Approve)
			adminRoutes.POST("/transfers/:id/reject", handlers.Transfer.Reject)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}

// Health returns a handler reporting service liveness and database
// reachability
func Health(ping func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
