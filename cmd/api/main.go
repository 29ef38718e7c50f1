package main

import (
	"fmt"
	"log"

	"github.com/matheus-feu/nf-bot-zap/internal/config"
	"github.com/matheus-feu/nf-bot-zap/internal/db"
	"github.com/matheus-feu/nf-bot-zap/internal/pkg/evolution"
	"github.com/matheus-feu/nf-bot-zap/internal/routes"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	evolutionClient := evolution.New(cfg.EvolutionAPIURL, cfg.EvolutionAPIKey, cfg.EvolutionInstanceName)

	router := routes.SetupRouter(dbConn, evolutionClient, asynqClient)

	serverAddr := fmt.Sprintf(":%s", "8080")
	log.Printf("Starting server on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
