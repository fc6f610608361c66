package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service. It is loaded
// once at startup and passed into constructors explicitly; packages
// never read the environment on their own.
type Config struct {
	// TableName is the DynamoDB table storing event records.
	TableName string

	// Region is the AWS region for the DynamoDB client. Empty means
	// use the SDK's default resolution (instance profile, env, etc).
	Region string

	// Port is the listen port for the local dev server. Ignored when
	// running inside Lambda.
	Port int

	// LogLevel is the minimum log level (DEBUG, INFO, WARN, ERROR).
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present (local dev only; Lambda
// gets its environment from the function configuration).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TableName: getEnv("DYNAMODB_TABLE_NAME", "events"),
		Region:    os.Getenv("AWS_REGION"),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.TableName == "" {
		return nil, fmt.Errorf("DYNAMODB_TABLE_NAME must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
