package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prescription-screening-server/internal/catalog"
	"prescription-screening-server/internal/config"
	"prescription-screening-server/internal/consultation"
	"prescription-screening-server/internal/eligibility"
	"prescription-screening-server/internal/routes"
	"prescription-screening-server/internal/storage"
)

func main() {
	// Load environment variables; a missing .env file is fine in production
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage
	consultations, patients, err := setupStorage(cfg)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}
	if err := storage.SeedPatients(context.Background(), patients); err != nil {
		log.Fatalf("Error seeding patients: %v", err)
	}

	// Wire the consultation service against the static catalog
	service := consultation.NewService(catalog.Default(), consultations, patients, eligibility.NewEngine())

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, service, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupStorage picks the store implementations for the configured driver.
func setupStorage(cfg *config.Config) (storage.ConsultationStore, storage.PatientStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMySQL:
		db, err := storage.InitDB(cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewMySQLConsultationStore(db), storage.NewMySQLPatientStore(db), nil
	default:
		return storage.NewMemoryConsultationStore(), storage.NewMemoryPatientStore(), nil
	}
}
