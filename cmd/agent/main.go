package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vehicleagent/internal/config"
	"vehicleagent/internal/handler"
	"vehicleagent/internal/repository"
	"vehicleagent/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Vehicle Agent Server")
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

	// Load the vehicle catalog once; a failed load degrades to an empty
	// catalog so the agent still answers, just without local matches.
	catalog, err := repository.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Printf("⚠️  Failed to load vehicle catalog: %v", err)
		log.Printf("   Continuing with an empty catalog")
		catalog = repository.Empty()
	} else {
		log.Printf("✅ Loaded vehicle catalog (%d vehicles)", catalog.Len())
	}

	// Initialize conversational fallback engine
	var chatClient service.ChatClient
	if cfg.Gemini.Enabled {
		gemini, err := service.NewGeminiClient(context.Background(), &cfg.Gemini)
		if err != nil {
			log.Printf("⚠️  Failed to initialize Gemini client: %v", err)
		} else {
			defer gemini.Close()
			chatClient = gemini
			log.Printf("✅ Gemini client initialized")
			log.Printf("   - Model: %s", cfg.Gemini.Model)
			log.Printf("   - Temperature: %.2f", cfg.Gemini.Temperature)
		}
	} else {
		log.Println("⚠️  Gemini is disabled - conversational fallback will return a fixed apology")
		log.Println("   Set GEMINI_API_KEY environment variable to enable chat")
	}

	// Initialize services
	backendClient := service.NewBackendClient(&cfg.Backend)
	invoker := service.NewInvoker(backendClient)
	renderer := service.NewRenderer()
	dispatcher := service.NewDispatcher(catalog, invoker, renderer, chatClient, cfg.Agent.CompareLimit)

	log.Println("✅ Services initialized")
	log.Printf("   - Backend API: %s", cfg.Backend.BaseURL)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(dispatcher, cfg.Agent.Name)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Routes
	router.GET("/health", chatHandler.Health)
	router.POST("/chat", chatHandler.Chat)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting agent server on %s", addr)

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
