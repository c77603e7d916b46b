package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trademomentumllc/ihep-application-sub007/internal/config"
	"github.com/trademomentumllc/ihep-application-sub007/internal/database"
	"github.com/trademomentumllc/ihep-application-sub007/internal/handlers"
	"github.com/trademomentumllc/ihep-application-sub007/internal/middleware"
	"github.com/trademomentumllc/ihep-application-sub007/internal/migrations"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"github.com/trademomentumllc/ihep-application-sub007/internal/routes"
	"github.com/trademomentumllc/ihep-application-sub007/internal/services"
	"github.com/trademomentumllc/ihep-application-sub007/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Rewards Ledger Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running database migrations (stage 1: tables)...")
	tableModels := []interface{}{
		&models.Activity{},
		&models.UserActivity{},
		&models.PointsAccount{},
		&models.PointsTransaction{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Reward{},
		&models.UserReward{},
	}
	for _, m := range tableModels {
		if err := database.DB.AutoMigrate(m); err != nil {
			logger.Fatal().Err(err).Msgf("Failed to migrate table for %T", m)
		}
	}

	logger.Info().Msg("Running database migrations (stage 2: indexes)...")
	if err := migrations.NewMigrator(database.DB).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run index migrations")
	}
	logger.Info().Msg("Database migrations complete")

	ledger := services.NewLedger(database.DB)
	board := services.NewLeaderboard(database.DB)
	h := handlers.NewHandler(ledger, board)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go ledger.StartExpirySweeper(sweepCtx)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", config.AppConfig.Port).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server exited")
}
