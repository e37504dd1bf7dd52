package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
type Config struct {
	// Spotify client-credentials pair. Loaded once at startup; the server
	// still starts when they are missing, but the search route stays
	// unavailable until a restart with valid values.
	SpotifyClientID     string
	SpotifyClientSecret string

	// Port the HTTP listener binds to, on all interfaces.
	Port string

	// Logging configuration.
	LogLevel      string
	LogPath       string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override variables already set in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	return &Config{
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		Port:                getEnv("PORT", "8000"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogPath:             getEnv("LOG_PATH", ""),
		LogMaxSize:          getEnvInt("LOG_MAX_SIZE", 100),
		LogMaxBackups:       getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:           getEnvInt("LOG_MAX_AGE", 28),
	}
}
