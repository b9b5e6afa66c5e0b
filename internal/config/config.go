package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	DeckSource   string
	FetchTimeout time.Duration
	DatabaseType string
	DatabasePath string
	DatabaseURL  string
	AWSRegion    string
	ShuffleSeed  int64
}

// Load reads configuration from environment variables with sensible defaults.
// Values from a .env file in the working directory are applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Failed to read .env file: %v", err)
	}

	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		DeckSource:   getEnv("DECK_SOURCE", "./data/deck.csv"),
		FetchTimeout: getDuration("FETCH_TIMEOUT", 10*time.Second),
		DatabaseType: getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath: getEnv("DB_PATH", "./flashcards.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		ShuffleSeed:  getInt64("SHUFFLE_SEED", 0),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: Invalid %s %q, using %s: %v", key, value, defaultValue, err)
		return defaultValue
	}
	return d
}

func getInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid %s %q, using %d: %v", key, value, defaultValue, err)
		return defaultValue
	}
	return n
}
