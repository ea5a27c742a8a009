package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/growlog/growlog-api/internal/cache"
	"github.com/growlog/growlog-api/internal/config"
	"github.com/growlog/growlog-api/internal/database"
	"github.com/growlog/growlog-api/internal/domain"
	"github.com/growlog/growlog-api/internal/logger"
	"github.com/growlog/growlog-api/internal/repository"
	"github.com/growlog/growlog-api/internal/server"
	"github.com/growlog/growlog-api/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Starting Growlog API...")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connection established and migrations completed")

	var statsCache domain.StatsCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisStatsCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		statsCache = redisCache
		logger.Info("Using Redis stats cache", "addr", cfg.Redis.Addr)
	} else {
		statsCache = cache.NewMemoryStatsCache()
		logger.Info("Using in-memory stats cache")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	reflectionRepo := repository.NewReflectionRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Services
	sentimentService := services.NewSentimentService(cfg.AI.BaseURL, cfg.AI.Timeout)
	userService := services.NewUserService(userRepo, moodRepo, reflectionRepo, todoRepo, statsCache, cfg.JWT)
	moodService := services.NewMoodService(moodRepo, reflectionRepo, sentimentService, statsCache)
	reflectionService := services.NewReflectionService(reflectionRepo, moodRepo, statsCache)
	todoService := services.NewTodoService(todoRepo, statsCache)
	dailyService := services.NewDailyService(moodRepo, reflectionRepo, todoRepo)
	statsService := services.NewStatsService(moodRepo, todoRepo, statsCache)
	logger.Info("Services initialized successfully")

	srv := server.New(*cfg, userService, moodService, reflectionService, todoService, dailyService, statsService)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", "port", cfg.HTTP.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server stopped with error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
