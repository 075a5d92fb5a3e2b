package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Engine   EngineConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	EnableCORS   bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// EngineConfig carries the engine's tuning values. The recency base and
// confidence floor are documented defaults, not derived constants, so they
// stay configurable.
type EngineConfig struct {
	RecencyBase     float64
	ConfidenceFloor float64
	ConfidenceGain  float64
	ProfileCacheTTL time.Duration
	InsightsLRUSize int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvInt("SERVER_PORT", 8090),
			EnableCORS:   getEnvBool("SERVER_ENABLE_CORS", true),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT_SECONDS", 15)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "styleengine"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "styleengine"),
		},
		Engine: EngineConfig{
			RecencyBase:     getEnvFloat("ENGINE_RECENCY_BASE", 1.6),
			ConfidenceFloor: getEnvFloat("ENGINE_CONFIDENCE_FLOOR", 0.3),
			ConfidenceGain:  getEnvFloat("ENGINE_CONFIDENCE_GAIN", 0.5),
			ProfileCacheTTL: time.Duration(getEnvInt("ENGINE_PROFILE_CACHE_SECONDS", 300)) * time.Second,
			InsightsLRUSize: getEnvInt("ENGINE_INSIGHTS_LRU_SIZE", 256),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port, got %d", c.Server.Port)
	}
	if c.Engine.RecencyBase <= 1 {
		return fmt.Errorf("ENGINE_RECENCY_BASE must be > 1, got %v", c.Engine.RecencyBase)
	}
	if c.Engine.ConfidenceFloor < 0 || c.Engine.ConfidenceFloor >= 1 {
		return fmt.Errorf("ENGINE_CONFIDENCE_FLOOR must be in [0,1), got %v", c.Engine.ConfidenceFloor)
	}
	if c.Engine.ConfidenceGain <= 0 || c.Engine.ConfidenceGain > 1 {
		return fmt.Errorf("ENGINE_CONFIDENCE_GAIN must be in (0,1], got %v", c.Engine.ConfidenceGain)
	}
	if c.Engine.InsightsLRUSize <= 0 {
		return fmt.Errorf("ENGINE_INSIGHTS_LRU_SIZE must be positive, got %d", c.Engine.InsightsLRUSize)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
