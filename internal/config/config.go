package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName       = "CashWallet"
	defaultAppEnv        = "development"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultCORSOrigins   = "*"
	defaultShutdownDelay = 10 * time.Second
	defaultStatsCacheTTL = 30 * time.Second

	// defaultSecretKey signs tokens when SECRET_KEY is unset. Development only.
	defaultSecretKey = "your-secret-key-change-in-production-please"

	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
	statsCacheTTLEnvVar    = "STATS_CACHE_TTL"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	MongoURL       string
	DBName         string
	RedisURL       string
	SecretKey      string
	CORSOrigins    string
	ShutdownPeriod time.Duration
	StatsCacheTTL  time.Duration
}

// Load reads configuration values from the environment and populates a Config
// instance. A .env file in the working directory is applied first if present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		MongoURL:       os.Getenv("MONGO_URL"),
		DBName:         os.Getenv("DB_NAME"),
		RedisURL:       os.Getenv("REDIS_URL"),
		SecretKey:      getEnv("SECRET_KEY", defaultSecretKey),
		CORSOrigins:    getEnv("CORS_ORIGINS", defaultCORSOrigins),
		ShutdownPeriod: defaultShutdownDelay,
		StatsCacheTTL:  defaultStatsCacheTTL,
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(statsCacheTTLEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", statsCacheTTLEnvVar, err)
		}
		cfg.StatsCacheTTL = d
	}

	if cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL must be set")
	}

	if cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_NAME must be set")
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
