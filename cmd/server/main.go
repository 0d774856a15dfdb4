package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/matchahub/matcha_hub/internal/cache"
	"github.com/matchahub/matcha_hub/internal/config"
	"github.com/matchahub/matcha_hub/internal/database"
	"github.com/matchahub/matcha_hub/internal/handlers"
	"github.com/matchahub/matcha_hub/internal/middleware"
	"github.com/matchahub/matcha_hub/internal/notify"
	"github.com/matchahub/matcha_hub/internal/repositories"
	"github.com/matchahub/matcha_hub/internal/server"
	"github.com/matchahub/matcha_hub/internal/services"
	"github.com/matchahub/matcha_hub/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting Matcha Hub backend...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// Validate production security settings
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run GORM auto-migration and seed the border catalog
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	if err := database.SeedBorders(db); err != nil {
		logger.Fatal("Failed to seed borders", err)
	}

	// Optional leaderboard cache
	leaderboard := cache.NewLeaderboardCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if leaderboard != nil {
		if err := leaderboard.Ping(); err != nil {
			logger.Warn("Redis unreachable, leaderboard falls back to database", "error", err)
		} else {
			logger.Info("Leaderboard cache connected", "addr", cfg.RedisAddr)
		}
	}

	// Optional achievement announcer
	announcer, err := notify.NewAnnouncer(cfg.BotToken, cfg.AnnounceChannelID)
	if err != nil {
		logger.Warn("Telegram announcer disabled", "error", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	forumRepo := repositories.NewForumRepository(db)
	feedRepo := repositories.NewFeedRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	achievementRepo := repositories.NewAchievementRepository(db)
	pointRepo := repositories.NewPointRepository(db)
	borderRepo := repositories.NewBorderRepository(db)

	// Services
	rewardsService := services.NewRewardsService(achievementRepo, pointRepo, userRepo, leaderboard, announcer)
	authService := services.NewAuthService(userRepo, rewardsService, cfg)
	friendService := services.NewFriendService(friendRepo, userRepo, rewardsService)
	forumService := services.NewForumService(forumRepo, rewardsService)
	feedService := services.NewFeedService(feedRepo, rewardsService)
	messageService := services.NewMessageService(messageRepo, friendRepo, rewardsService)
	listingService := services.NewListingService(listingRepo, rewardsService)
	borderService := services.NewBorderService(borderRepo, userRepo, leaderboard)
	leaderboardService := services.NewLeaderboardService(pointRepo, userRepo, leaderboard)

	// HTTP
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware: middleware.NewAuthMiddleware(cfg.JWTSecret),
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.RateLimitPerIP, time.Minute),

		AuthHandler:        handlers.NewAuthHandler(authService),
		UserHandler:        handlers.NewUserHandler(userRepo, rewardsService),
		FriendHandler:      handlers.NewFriendHandler(friendService),
		ForumHandler:       handlers.NewForumHandler(forumService),
		FeedHandler:        handlers.NewFeedHandler(feedService),
		MessageHandler:     handlers.NewMessageHandler(messageService),
		ListingHandler:     handlers.NewListingHandler(listingService),
		RewardsHandler:     handlers.NewRewardsHandler(rewardsService),
		BorderHandler:      handlers.NewBorderHandler(borderService),
		LeaderboardHandler: handlers.NewLeaderboardHandler(leaderboardService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
