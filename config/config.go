package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process settings read from the environment
type Config struct {
	AppHost     string
	AppPort     string
	FrontendURL string

	StorageDriver string // "postgres" or "memory"

	DBHost     string
	DBPort     string
	DBDatabase string
	DBUsername string
	DBPassword string
	DBSSLMode  string

	AdminToken        string
	AdminPasswordHash string
	AdminJWTSecret    string

	ResendAPIKey string
	NotifyFrom   string
	NotifyTo     []string

	LogLevel string

	// SeedCatalog fills empty catalog tables with sample entries at startup
	SeedCatalog bool
}

// Load reads .env (if present) and the process environment
func Load() (*Config, error) {
	// .env is optional in production; a missing file is not an error here
	_ = godotenv.Load()

	cfg := &Config{
		AppHost:     os.Getenv("APP_HOST"),
		AppPort:     getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "*"),

		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBDatabase: os.Getenv("DB_DATABASE"),
		DBUsername: os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AdminToken:        os.Getenv("ADMIN_TOKEN"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminJWTSecret:    os.Getenv("ADMIN_JWT_SECRET"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		NotifyFrom:   os.Getenv("NOTIFY_FROM"),
		NotifyTo:     splitList(os.Getenv("NOTIFY_TO")),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		SeedCatalog: getBool("SEED_CATALOG"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail at first use
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case "postgres":
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required when STORAGE_DRIVER=postgres")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.AdminToken == "" && c.AdminJWTSecret == "" {
		return fmt.Errorf("either ADMIN_TOKEN or ADMIN_JWT_SECRET must be set")
	}
	return nil
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUsername, c.DBPassword, c.DBDatabase, c.DBSSLMode)
}

// Address is the listen address for the HTTP server
func (c *Config) Address() string {
	return c.AppHost + ":" + c.AppPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
