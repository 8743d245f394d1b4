package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"
)

// @title           Job Board API
// @version         1.0
// @description     REST backend for a job board: accounts, postings and applications.
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	if err := database.RunMigrations(cfg.DBUrl, "migrations"); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Setup Resume Store
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, cfg.AdminSignupSecret)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		Tokens:        tokens,
		Store:         store,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
