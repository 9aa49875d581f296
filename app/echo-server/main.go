package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dineWise/app/echo-server/router"
	"dineWise/business/analytics"
	"dineWise/business/chat"
	"dineWise/business/experiment"
	"dineWise/business/recommendation"
	userService "dineWise/business/user"
	"dineWise/internal/middleware"
	"dineWise/internal/repository/dataset"
	"dineWise/internal/repository/embeddings"
	"dineWise/internal/repository/llm"
	psqlRepo "dineWise/internal/repository/postgres"
	redisRepo "dineWise/internal/repository/redis"
	"dineWise/internal/rest"
	"dineWise/pkg/config"
	"dineWise/pkg/database"
	redisdb "dineWise/pkg/database/redis"
	"dineWise/pkg/logger"
	"dineWise/pkg/metrics"
	"dineWise/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting DineWise", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)
	logger.Info("Redis connected successfully")

	// Init repo
	datasetStore := dataset.NewStore(cfg.Dataset.RestaurantsCSV)
	if err := datasetStore.Load(); err != nil {
		logger.Fatal("Failed to load restaurant dataset", "error", err)
	}

	embeddingProvider := embeddings.NewProvider(embeddings.Config{
		BaseURL:        cfg.Embedding.BaseURL,
		APIKey:         cfg.Embedding.APIKey,
		Model:          cfg.Embedding.Model,
		Dimension:      cfg.Embedding.Dimension,
		TimeoutSeconds: cfg.Embedding.TimeoutSeconds,
		MatrixPath:     cfg.Dataset.EmbeddingsNPY,
	})

	groqClient := llm.NewClient(llm.Config{
		APIKey:         cfg.Groq.APIKey,
		BaseURL:        cfg.Groq.BaseURL,
		Model:          cfg.Groq.Model,
		TimeoutSeconds: cfg.Groq.TimeoutSeconds,
		MaxTokens:      cfg.Groq.MaxTokens,
		Enabled:        cfg.Groq.Enabled,
	})

	sessionRepo := redisRepo.NewSessionRepository(redisClient)
	userRepo := psqlRepo.NewUserRepository(db)

	// Init validate
	validate := validator.New()

	// Init service
	assigner := experiment.NewAssigner()
	eventLog := analytics.NewEventLog()
	feedbackLog := analytics.NewFeedbackLog()
	analyticsService := analytics.NewService(eventLog, feedbackLog)

	resultCache := recommendation.NewResultCache(recommendation.DefaultCacheTTL)
	recommendationService := recommendation.NewService(
		datasetStore,
		embeddingProvider,
		groqClient,
		sessionRepo,
		assigner,
		eventLog,
		resultCache,
	)
	shareCodec := recommendation.NewShareCodec(cfg.App.ShareKey)
	chatService := chat.NewService(groqClient, recommendationService, sessionRepo)
	usrService := userService.NewUserService(userRepo, sessionRepo, validate)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := usrService.SeedUsers(seedCtx); err != nil {
		logger.Fatal("Failed to seed demo users", "error", err)
	}
	seedCancel()

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	feedbackHandler := rest.NewFeedbackHandler(feedbackLog, assigner)
	chatHandler := rest.NewChatHandler(chatService)
	shareHandler := rest.NewShareHandler(shareCodec, recommendationService)
	metadataHandler := rest.NewMetadataHandler(datasetStore, cfg.App.Version)
	adminHandler := rest.NewAdminHandler(analyticsService, feedbackLog, assigner, resultCache)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(sessionRepo)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupMetadataRoutes(api, metadataHandler)
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendationHandler, feedbackHandler, authRequired)
	router.SetupChatRoutes(api, chatHandler, authRequired)
	router.SetupShareRoutes(api, shareHandler, authRequired)
	router.SetupAdminRoutes(api, adminHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
