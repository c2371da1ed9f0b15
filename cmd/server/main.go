package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"auctionlytics/internal/config"
	"auctionlytics/internal/handler"
	"auctionlytics/internal/repository"
	"auctionlytics/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Auction Analytics Backend")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewSQLRepository(
		cfg.Database.Driver,
		cfg.DatabaseDSN(),
		cfg.Database.MaxConnections,
		cfg.Database.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Printf("✅ Connected to %s database", cfg.Database.Driver)

	ctx := context.Background()
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	if cfg.Database.Seed {
		if err := repo.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("✅ Demo dataset ready")
	}

	// Initialize optional OpenAI client
	var generator service.TextGenerator
	if cfg.OpenAI.Enabled {
		generator = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("✅ OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Temperature: %.2f", cfg.OpenAI.Temperature)
		log.Printf("   - MaxTokens: %d", cfg.OpenAI.MaxTokens)
	} else {
		log.Println("⚠️  OpenAI is disabled - chat answers use local aggregation only")
		log.Println("   Set OPENAI_API_KEY environment variable to enable model-generated answers")
	}

	// Initialize services
	classifier := service.NewClassifier()
	analytics := service.NewAnalytics(repo, classifier, generator, cfg.Analytics)

	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(analytics)
	wsHandler := handler.NewWSHandler(analytics)
	collectionsHandler := handler.NewCollectionsHandler(repo)
	authHandler := handler.NewAuthHandler()

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "auction-analytics-backend",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/login", authHandler.Login)

		// Collections
		api.GET("/users", collectionsHandler.ListUsers)
		api.GET("/properties", collectionsHandler.ListProperties)
		api.GET("/properties/:id", collectionsHandler.GetProperty)
		api.GET("/auctions", collectionsHandler.ListAuctions)
		api.GET("/auctions/:id", collectionsHandler.GetAuction)
		api.GET("/bids", collectionsHandler.ListBids)
		api.POST("/bids", collectionsHandler.PlaceBid)

		// Chat
		api.POST("/chat", chatHandler.Chat)
		api.POST("/chat/classify", chatHandler.Classify)
		api.GET("/chat/ws", wsHandler.Serve)
		api.GET("/sample-questions", chatHandler.SampleQuestions)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
