package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

var (
	ErrMissingDBURL = errors.New("DB_URL is not set")
	ErrInvalidDBURL = errors.New("DB_URL is not a valid connection string")
)

type Config struct {
	// Database
	DBURL  string
	DBHost string
}

var envPaths = []string{
	".env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration from the first .env file found and the environment
func LoadConfig() (*Config, error) {
	envLoaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Printf("✅ Environment loaded from: %s", path)
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		DBURL: getEnv("DB_URL", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	return cfg, nil
}

// validate checks the connection string and fills the derived fields
func (c *Config) validate() error {
	if c.DBURL == "" {
		return ErrMissingDBURL
	}

	// Expected form: postgresql://host:port/dbname?user=user&password=password
	connConfig, err := pgx.ParseConfig(c.DBURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDBURL, err)
	}
	c.DBHost = connConfig.Host

	return nil
}

// IsLocal reports whether the database runs on this machine
func (c *Config) IsLocal() bool {
	return c.DBHost == "localhost" || c.DBHost == "127.0.0.1"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
