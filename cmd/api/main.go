package main

import (
	"fmt"
	"log"
	"os"

	"baseball-replay/internal/api/handlers"
	"baseball-replay/internal/api/middleware"
	"baseball-replay/internal/config"
	"baseball-replay/internal/data"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "examples/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config %s: %v", cfgPath, err)
	}

	league, err := data.LoadLeague(cfg.Data.BattingFile, cfg.Data.PitchingFile, cfg.Data.FieldingFile)
	if err != nil {
		log.Fatalf("load league: %v", err)
	}
	log.Printf("loaded %d teams from %s", league.Len(), cfgPath)

	// API_PORT overrides the configured address for container deploys.
	addr := cfg.Server.Addr
	if port := os.Getenv("API_PORT"); port != "" {
		addr = fmt.Sprintf(":%s", port)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	teamsHandler := handlers.NewTeamsHandler(league)
	simulateHandler := handlers.NewSimulateHandler(league, cfg.Game)
	rankHandler := handlers.NewRankHandler(league)
	rulesHandler := handlers.NewRulesHandler()
	streamHandler := handlers.NewStreamHandler(league, cfg.Game)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "teams": league.Len()})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/teams", teamsHandler.ListTeams)
		api.GET("/teams/:code", teamsHandler.GetTeam)

		api.POST("/simulate", simulateHandler.RunGame)
		api.GET("/stream", streamHandler.StreamGame)

		api.GET("/rank", rankHandler.RankTeams)
		api.GET("/rules", rulesHandler.ListRules)
	}

	// Start server
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
