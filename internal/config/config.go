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

// Store backends.
const (
	BackendPostgres = "postgres"
	BackendREST     = "rest"
	BackendSQLite   = "sqlite"
)

// Cache reconciliation policies.
const (
	ReconcileReplace = "replace"
	ReconcileMerge   = "merge"
)

// Config holds application configuration
type Config struct {
	// Server
	Env            string
	Port           string
	RateLimitRPS   float64
	RateLimitBurst int

	// Store
	StoreBackend string
	StoreURL     string
	StoreAPIKey  string
	StoreTimeout time.Duration
	SQLitePath   string

	// Database (postgres backend)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Cache
	CacheReconcile string

	// Access gate
	GatePasscode   string
	GateClearDelay time.Duration
	SessionFile    string

	// Change events
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
		StoreURL:     os.Getenv("STORE_URL"),
		StoreAPIKey:  os.Getenv("STORE_API_KEY"),
		SQLitePath:   getEnv("SQLITE_PATH", "kakeibo.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "kakeibo"),
		DBPassword: getEnv("DB_PASSWORD", "kakeibo"),
		DBName:     getEnv("DB_NAME", "kakeibo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		CacheReconcile: strings.ToLower(getEnv("CACHE_RECONCILE", ReconcileReplace)),

		GatePasscode: getEnv("GATE_PASSCODE", "1841"),
		SessionFile:  getEnv("SESSION_FILE", ".kakeibo-session"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "kakeibo"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "kakeibo.changes"),
	}

	var err error
	if config.StoreTimeout, err = parseDuration("STORE_TIMEOUT", getEnv("STORE_TIMEOUT", "10s")); err != nil {
		return nil, err
	}
	if config.GateClearDelay, err = parseDuration("GATE_CLEAR_DELAY", getEnv("GATE_CLEAR_DELAY", "1s")); err != nil {
		return nil, err
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: must be a positive number", os.Getenv("RATE_LIMIT_RPS"))
	}
	config.RateLimitRPS = rps

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil || burst <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q: must be a positive integer", os.Getenv("RATE_LIMIT_BURST"))
	}
	config.RateLimitBurst = burst

	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendPostgres, BackendSQLite:
	case BackendREST:
		if c.StoreURL == "" {
			return fmt.Errorf("STORE_URL is required when STORE_BACKEND=rest")
		}
		if c.StoreAPIKey == "" {
			return fmt.Errorf("STORE_API_KEY is required when STORE_BACKEND=rest")
		}
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: must be postgres, rest, or sqlite", c.StoreBackend)
	}

	switch c.CacheReconcile {
	case ReconcileReplace, ReconcileMerge:
	default:
		return fmt.Errorf("invalid CACHE_RECONCILE %q: must be replace or merge", c.CacheReconcile)
	}

	if len(c.GatePasscode) != 4 || strings.Trim(c.GatePasscode, "0123456789") != "" {
		return fmt.Errorf("GATE_PASSCODE must be exactly 4 digits")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

func parseDuration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
