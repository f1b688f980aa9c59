package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Generator GeneratorConfig
	Gemini    GeminiConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// GeneratorConfig tunes the synthetic workforce built at startup.
type GeneratorConfig struct {
	WorkforceSize        int
	AttendanceWindowDays int
}

// GeminiConfig is optional; without an API key the assistant routes
// answer 503 instead of failing startup.
type GeminiConfig struct {
	APIKey string
	Model  string
}

func Load() (*Config, error) {
	// A missing .env is fine in containers; variables come from the
	// environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	size, err := strconv.Atoi(getEnv("WORKFORCE_SIZE", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKFORCE_SIZE: %w", err)
	}
	windowDays, err := strconv.Atoi(getEnv("ATTENDANCE_WINDOW_DAYS", "365"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_WINDOW_DAYS: %w", err)
	}

	config.Generator = GeneratorConfig{
		WorkforceSize:        size,
		AttendanceWindowDays: windowDays,
	}

	config.Gemini = GeminiConfig{
		APIKey: getEnv("GEMINI_API_KEY", ""),
		Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Generator.WorkforceSize <= 0 {
		return fmt.Errorf("WORKFORCE_SIZE must be positive")
	}
	if c.Generator.AttendanceWindowDays <= 0 {
		return fmt.Errorf("ATTENDANCE_WINDOW_DAYS must be positive")
	}
	return nil
}

// SlogLevel maps the configured log level onto slog's scale.
func (c *Config) SlogLevel() slog.Level {
	switch c.App.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
