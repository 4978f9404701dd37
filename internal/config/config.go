package config

import (
	"fmt"
	"os"
)

// Session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	AppEnv         string
	Port           string
	SessionSecret  string
	SessionBackend string
	RedisURL       string
	TeachersFile   string
	StaticDir      string
	LogLevel       string
	LogFormat      string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		SessionSecret:  getEnv("SESSION_SECRET", ""),
		SessionBackend: getEnv("SESSION_BACKEND", SessionBackendMemory),
		RedisURL:       getEnv("REDIS_URL", ""),
		TeachersFile:   getEnv("TEACHERS_FILE", "teachers.json"),
		StaticDir:      getEnv("STATIC_DIR", "web/static"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	switch cfg.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q",
			SessionBackendMemory, SessionBackendRedis, cfg.SessionBackend)
	}

	if cfg.SessionBackend == SessionBackendRedis && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required when SESSION_BACKEND is %q", SessionBackendRedis)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
