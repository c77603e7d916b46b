package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/trademomentumllc/ihep-application-sub007/internal/handlers"
	"github.com/trademomentumllc/ihep-application-sub007/internal/middleware"
)

// SetupRoutes registers the ledger API surface.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	api.Use(middleware.GeneralRateLimit())

	// Catalog (read-only)
	api.GET("/activities", h.ListActivities)
	api.GET("/rewards", h.ListRewards)
	api.GET("/leaderboard", h.GetLeaderboard)

	users := api.Group("/users/:userId")
	{
		users.POST("/activities", middleware.RecordRateLimit(), h.RecordActivity)
		users.POST("/redemptions", h.RedeemReward)
		users.GET("/redemptions", h.ListUserRewards)
		users.GET("/account", h.GetAccount)
		users.GET("/transactions", h.GetTransactionHistory)
		users.GET("/achievements", h.ListUserAchievements)
	}
}
