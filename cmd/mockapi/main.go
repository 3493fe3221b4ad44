package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"vehicleagent/internal/config"
	"vehicleagent/internal/mockapi"
	"vehicleagent/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	catalog, err := repository.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load vehicle catalog: %v", err)
	}
	log.Printf("✅ Loaded vehicle catalog (%d vehicles)", catalog.Len())

	server, err := mockapi.NewServer(catalog, cfg.Catalog.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize mock backend: %v", err)
	}

	router := gin.Default()
	server.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Backend.Port)
	log.Printf("🚀 Starting mock vehicle backend on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
