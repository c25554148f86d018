package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration, read from the environment
type Config struct {
	// HTTPAddr is the listen address for the API server
	HTTPAddr string

	// Redis connection settings
	RedisAddr     string
	RedisPassword string

	// SessionTTL is how long an idle session survives before it is discarded
	SessionTTL time.Duration

	// Optional Discord notification mirror
	DiscordToken     string
	DiscordChannelID string

	// LogLevel selects the zap log level (debug, info, warn, error)
	LogLevel string
}

// Load reads the configuration from a .env file, if present, and the
// environment
func Load() *Config {
	// A missing .env file is fine; the environment still applies
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		SessionTTL:       getDurationEnv("SESSION_TTL", 12*time.Hour),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
