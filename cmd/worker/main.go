package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheus-feu/nf-bot-zap/internal/config"
	"github.com/matheus-feu/nf-bot-zap/internal/db"
	"github.com/matheus-feu/nf-bot-zap/internal/tasks"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Worker connected to database.")

	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				"default": 3,
			},
			Concurrency: 10, // Max 10 concurrent jobs
		},
	)

	taskProcessor := tasks.NewTaskProcessor(dbConn, cfg)

	mux := asynq.NewServeMux()
	mux.HandleFunc(
		tasks.TypeTaskProcessNote,
		taskProcessor.HandleProcessNoteTask,
	)

	go func() {
		log.Println("Starting Asynq worker server...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Could not run Asynq worker server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("Shutdown signal received, shutting down gracefully...")

	srv.Shutdown()
	log.Println("Asynq worker server shut down.")

	log.Println("Worker process shut down complete.")
}
