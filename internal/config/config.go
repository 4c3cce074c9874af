package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv         string
	Port           string
	DatabasePath   string
	MigrationsDir  string
	JWTSecret      string
	CSVPath        string
	FeedInterval   time.Duration
	AllowedOrigins string
}

func Load() Config {
	return Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		DatabasePath:   getEnv("DATABASE_PATH", "backend.db"),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		CSVPath:        getEnv("CSV_PATH", "backend_table.csv"),
		FeedInterval:   getInterval("FEED_INTERVAL_MS", 1000),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
	}
}

// Origins splits the configured origin list. Origins are enumerated
// explicitly, never a wildcard.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getInterval(key string, fallbackMillis int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallbackMillis) * time.Millisecond
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return time.Duration(fallbackMillis) * time.Millisecond
	}
	return time.Duration(parsed) * time.Millisecond
}
