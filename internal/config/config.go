package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is the documented placeholder value. Running with it
// is treated as a misconfiguration.
const DefaultSessionSecret = "change-me"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Auth configuration
	Auth AuthConfig

	// AI model configuration
	AI AIConfig

	// Web research configuration
	Research ResearchConfig

	// Generation worker configuration
	Generation GenerationConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds the embedded database settings
type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// AuthConfig holds session and seed-account settings
type AuthConfig struct {
	SessionSecret string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
	AdminName     string
	AdminRole     string
}

// AIConfig holds model-service settings. An empty APIKey disables nothing
// up front; the failure surfaces when the first model call is made.
type AIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// ResearchConfig holds web-search settings. An empty APIKey disables the
// research step entirely.
type ResearchConfig struct {
	APIKey   string
	Endpoint string
}

// GenerationConfig holds worker settings
type GenerationConfig struct {
	PollInterval  time.Duration
	DefaultTone   string
	DefaultVoice  string
	DefaultLength int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Path:        getEnv("DATABASE_PATH", "./blog.db"),
			BusyTimeout: getDurationEnv("DATABASE_BUSY_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			SessionSecret: getEnv("SESSION_SECRET", ""),
			TokenTTL:      getDurationEnv("SESSION_TTL", 30*24*time.Hour),
			AdminEmail:    getEnv("ADMIN_EMAIL", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			AdminName:     getEnv("ADMIN_NAME", "Admin"),
			AdminRole:     getEnv("ADMIN_ROLE", "admin"),
		},
		AI: AIConfig{
			APIKey:    getEnv("GEMINI_API_KEY", ""),
			Model:     getEnv("AI_MODEL", "gemini-2.0-flash"),
			MaxTokens: getIntEnv("AI_MAX_TOKENS", 4000),
		},
		Research: ResearchConfig{
			APIKey:   getEnv("BRAVE_API_KEY", ""),
			Endpoint: getEnv("SEARCH_ENDPOINT", "https://api.search.brave.com/res/v1/web/search"),
		},
		Generation: GenerationConfig{
			PollInterval:  getDurationEnv("GENERATION_POLL_INTERVAL", 2*time.Second),
			DefaultTone:   getEnv("GENERATION_DEFAULT_TONE", "professional"),
			DefaultVoice:  getEnv("GENERATION_DEFAULT_VOICE", "expert"),
			DefaultLength: getIntEnv("GENERATION_DEFAULT_LENGTH", 2000),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.Auth.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Auth.SessionSecret == DefaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET is set to the documented default, refusing to start")
	}
	return nil
}

// ResearchEnabled reports whether a search credential is configured
func (c *Config) ResearchEnabled() bool {
	return c.Research.APIKey != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
