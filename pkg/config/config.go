// Package config provides configuration management for bill-tally.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Database DatabaseConfig
	Gemini   GeminiConfig
	UserID   string
	Debug    bool
}

// DatabaseConfig represents SQLite storage configuration.
type DatabaseConfig struct {
	Path string
}

// GeminiConfig represents the bill extraction service configuration.
type GeminiConfig struct {
	APIKey string
	APIURL string
	Model  string
}

// ChartPath is resolved separately because the chart override file is
// optional; an empty value means built-in account labels.
func (c *Config) ChartPath() string {
	return os.Getenv("BILL_TALLY_CHART_PATH")
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Database: DatabaseConfig{
			Path: getEnvOrDefault("BILL_TALLY_DB_PATH", "./bill-tally.db"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			APIURL: getEnvOrDefault("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		UserID: os.Getenv("BILL_TALLY_USER"),
		Debug:  os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
// It checks that the named fields are set; field names use dotted
// paths like "database.path" or "gemini.apiKey".
func (c *Config) Validate(required ...string) error {
	var missing []string

	for _, field := range required {
		var value string
		switch field {
		case "database.path":
			value = c.Database.Path
		case "gemini.apiKey":
			value = c.Gemini.APIKey
		case "gemini.apiUrl":
			value = c.Gemini.APIURL
		case "gemini.model":
			value = c.Gemini.Model
		case "user":
			value = c.UserID
		default:
			return fmt.Errorf("unknown configuration field: %s", field)
		}

		if value == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
