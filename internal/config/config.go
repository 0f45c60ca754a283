package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
	Timezone string
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins []string
}

// DatabaseConfig selects the store backend. Path is used by sqlite, URL by postgres.
type DatabaseConfig struct {
	Driver string
	Path   string
	URL    string
}

type AuthConfig struct {
	SecretKey string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a validated Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:             getenvWithDefault("PORT", "8080"),
			CORSAllowOrigins: getenvCSV("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(getenvWithDefault("DB_DRIVER", "sqlite")),
			Path:   getenvWithDefault("DB_PATH", filepath.Join("data", "zivora.db")),
			URL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		},
		Auth: AuthConfig{
			SecretKey: strings.TrimSpace(os.Getenv("SECRET_KEY")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getenvWithDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getenvWithDefault("LOG_FORMAT", "json")),
		},
		Timezone: getenvWithDefault("TZ", "UTC"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Server.Port)
	}

	switch c.Database.Driver {
	case "sqlite":
		if strings.TrimSpace(c.Database.Path) == "" {
			return errors.New("DB_PATH must not be empty")
		}
	case "postgres":
		if c.Database.URL == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.Database.Driver)
	}

	if err := validateSecretKey(c.Auth.SecretKey); err != nil {
		return err
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format)
	}
	return nil
}

func validateSecretKey(secret string) error {
	if secret == "" {
		return errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return errors.New("SECRET_KEY must not use a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return fmt.Errorf("SECRET_KEY is too short; use at least %d characters", minSecretKeyLength)
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getenvCSV(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
