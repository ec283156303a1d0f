package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Service ServiceConfig `json:"service"`
	Redis   RedisConfig   `json:"redis"`
	Log     LogConfig     `json:"log"`
	Server  ServerConfig  `json:"server"`
}

// ServiceConfig holds the NIP24 service connection settings
type ServiceConfig struct {
	URL     string        `json:"url"`
	KeyID   string        `json:"key_id"`
	Key     string        `json:"-"`
	App     string        `json:"app"`
	Test    bool          `json:"test"`
	Timeout time.Duration `json:"timeout"`

	// RateLimit is the maximum number of requests per second; zero disables throttling
	RateLimit float64 `json:"rate_limit"`

	// CacheTTL enables the response cache when positive
	CacheTTL time.Duration `json:"cache_ttl"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL string `json:"url"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// ServerConfig holds gateway configuration
type ServerConfig struct {
	Address      string          `json:"address"`
	ReadTimeout  time.Duration   `json:"read_timeout"`
	WriteTimeout time.Duration   `json:"write_timeout"`
	RateLimit    RateLimitConfig `json:"rate_limit"`
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	BurstSize         int `json:"burst_size"`
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// LoadFile reads the given env file and then the environment
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables
func FromEnv() (*Config, error) {
	cfg := &Config{
		Service: ServiceConfig{
			URL:       getEnv("NIP24_URL", ""),
			KeyID:     getEnv("NIP24_KEY_ID", ""),
			Key:       getEnv("NIP24_KEY", ""),
			App:       getEnv("NIP24_APP", ""),
			Test:      getEnvAsBool("NIP24_TEST", false),
			Timeout:   getEnvAsDuration("NIP24_TIMEOUT", 60*time.Second),
			RateLimit: getEnvAsFloat("NIP24_RATE_LIMIT", 0),
			CacheTTL:  getEnvAsDuration("NIP24_CACHE_TTL", 0),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Server: ServerConfig{
			Address:      getEnv("SERVER_ADDRESS", ":8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 2*time.Minute),
			RateLimit: RateLimitConfig{
				RequestsPerMinute: getEnvAsInt("SERVER_RATE_LIMIT_RPM", 120),
				BurstSize:         getEnvAsInt("SERVER_RATE_LIMIT_BURST", 10),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	if c.Service.Timeout <= 0 {
		return fmt.Errorf("NIP24_TIMEOUT must be positive")
	}
	if c.Service.RateLimit < 0 {
		return fmt.Errorf("NIP24_RATE_LIMIT must not be negative")
	}
	if c.Server.RateLimit.RequestsPerMinute < 0 || c.Server.RateLimit.BurstSize < 0 {
		return fmt.Errorf("server rate limit must not be negative")
	}
	return nil
}

// RequireCredentials reports an error when a production client would be
// created without a key pair
func (s ServiceConfig) RequireCredentials() error {
	if s.Test {
		return nil
	}
	if s.KeyID == "" || s.Key == "" {
		return fmt.Errorf("NIP24_KEY_ID and NIP24_KEY are required (or use the test service)")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("90s") or plain seconds ("90")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
