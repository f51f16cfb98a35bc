package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "apexforge-secret-key-change-in-production"

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
	CORS   CORSConfig
	Notify NotifyConfig
	App    AppConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// StoreConfig selects the record store backend. URL is a Postgres DSN for
// the postgres driver and a redis:// URL for the redis driver.
type StoreConfig struct {
	Driver   string
	URL      string
	Name     string
	MaxConns int
}

type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	AdminUser    string
	PasswordHash string
	// BootstrapPassword is the plaintext fallback accepted when the hash
	// check fails. Intended only for first-run setup.
	BootstrapPassword string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type NotifyConfig struct {
	ResendAPIKey string
	FromAddress  string
	ToAddress    string
	Timeout      time.Duration
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8001"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			Driver:   strings.ToLower(getEnv("STORE_DRIVER", "memory")),
			URL:      getEnv("DB_DSN", os.Getenv("MONGO_URL")),
			Name:     getEnv("DB_NAME", "studio"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 25),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET_KEY", defaultJWTSecret),
			TokenTTL:          getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
			AdminUser:         getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash:      os.Getenv("ADMIN_PASSWORD_HASH"),
			BootstrapPassword: getEnvAllowEmpty("ADMIN_PASSWORD", "admin123"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Notify: NotifyConfig{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			FromAddress:  getEnv("SENDER_EMAIL", "onboarding@resend.dev"),
			ToAddress:    getEnv("ADMIN_EMAIL", "admin@apexforge.com"),
			Timeout:      getEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET_KEY is not set, using the development default")
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Driver {
	case "memory":
	case "postgres", "redis":
		if c.Store.URL == "" {
			return fmt.Errorf("DB_DSN is required for store driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.AdminUser == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty returns defaultValue only when key is unset, so an
// explicitly empty value is kept.
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
