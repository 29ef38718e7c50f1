package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DatabaseURL           string // Consolidated DB Connection URL
	RedisURL              string
	EvolutionAPIURL       string
	EvolutionAPIKey       string
	EvolutionInstanceName string
	OpenAIAPIKey          string
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present, just log it
		// log.Printf("Warning: .env file not found, reading from environment")
	}

	return &Config{
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		EvolutionAPIURL:       getEnv("EVOLUTION_API_URL", ""),
		EvolutionAPIKey:       getEnv("EVOLUTION_API_KEY", ""),
		EvolutionInstanceName: getEnv("EVOLUTION_INSTANCE_NAME", ""),
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
