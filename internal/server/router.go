package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/internal/handlers"
	"github.com/matchahub/matcha_hub/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter

	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	FriendHandler      *handlers.FriendHandler
	ForumHandler       *handlers.ForumHandler
	FeedHandler        *handlers.FeedHandler
	MessageHandler     *handlers.MessageHandler
	ListingHandler     *handlers.ListingHandler
	RewardsHandler     *handlers.RewardsHandler
	BorderHandler      *handlers.BorderHandler
	LeaderboardHandler *handlers.LeaderboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.Use(cfg.RateLimiter.LimitByIP())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api/v1")

	// Public
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)
	api.GET("/leaderboard", cfg.LeaderboardHandler.Top)
	api.GET("/forum/threads", cfg.ForumHandler.ListThreads)
	api.GET("/forum/threads/:slug", cfg.ForumHandler.GetThread)
	api.GET("/forum/threads/:slug/comments", cfg.ForumHandler.ListComments)
	api.GET("/marketplace/listings", cfg.ListingHandler.Browse)
	api.GET("/marketplace/listings/:slug", cfg.ListingHandler.Get)
	api.GET("/users/:username", cfg.UserHandler.GetProfile)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth(), cfg.RateLimiter.LimitByUser())

	protected.GET("/me", cfg.UserHandler.GetMe)
	protected.PATCH("/me", cfg.UserHandler.UpdateMe)

	protected.GET("/friends", cfg.FriendHandler.List)
	protected.POST("/friends/requests", cfg.FriendHandler.SendRequest)
	protected.GET("/friends/requests", cfg.FriendHandler.ListPending)
	protected.POST("/friends/requests/:id/accept", cfg.FriendHandler.AcceptRequest)
	protected.POST("/friends/requests/:id/reject", cfg.FriendHandler.RejectRequest)
	protected.DELETE("/friends/:user_id", cfg.FriendHandler.Remove)

	protected.POST("/forum/threads", cfg.ForumHandler.CreateThread)
	protected.POST("/forum/threads/:slug/comments", cfg.ForumHandler.AddComment)

	protected.GET("/feed", cfg.FeedHandler.ListFeed)
	protected.POST("/feed", cfg.FeedHandler.CreatePost)
	protected.POST("/feed/:id/like", cfg.FeedHandler.Like)
	protected.DELETE("/feed/:id/like", cfg.FeedHandler.Unlike)

	protected.POST("/messages", cfg.MessageHandler.Send)
	protected.GET("/messages/unread", cfg.MessageHandler.UnreadCount)
	protected.GET("/messages/:user_id", cfg.MessageHandler.GetConversation)

	protected.POST("/marketplace/listings", cfg.ListingHandler.Create)
	protected.POST("/marketplace/listings/:id/sold", cfg.ListingHandler.MarkSold)
	protected.DELETE("/marketplace/listings/:id", cfg.ListingHandler.Remove)

	protected.GET("/rewards/achievements", cfg.RewardsHandler.GetAchievements)
	protected.GET("/rewards/history", cfg.RewardsHandler.GetPointHistory)

	protected.GET("/borders", cfg.BorderHandler.List)
	protected.POST("/borders/:id/purchase", cfg.BorderHandler.Purchase)
	protected.PUT("/borders/selected", cfg.BorderHandler.Select)

	return router
}
