package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultServerPort = "8000"
	defaultSecretsDir = "/run/secrets"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Gemini configuration
	GeminiAPIKey  string
	GeminiBaseURL string

	Environment Environment
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Environment: env}

	// Load configuration based on environment
	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI environment using only environment variables
func loadCIConfig(cfg *Config) error {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.GeminiBaseURL = os.Getenv("GEMINI_BASE_URL")

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required in CI environment")
	}

	return nil
}

// loadDevConfig loads configuration for development environment.
// Environment variables win, then the key file, then Docker secrets.
func loadDevConfig(cfg *Config) error {
	cfg.ServerPort = envOrSecret("SERVER_PORT", "server_port")
	cfg.ServerHost = envOrSecret("SERVER_HOST", "server_host")
	cfg.GeminiBaseURL = os.Getenv("GEMINI_BASE_URL")

	key, err := loadAPIKey()
	if err != nil {
		return err
	}
	cfg.GeminiAPIKey = key

	return nil
}

// loadProdConfig loads configuration for production environment
func loadProdConfig(cfg *Config) error {
	cfg.ServerPort = envOrSecret("SERVER_PORT", "server_port")
	cfg.ServerHost = envOrSecret("SERVER_HOST", "server_host")
	cfg.GeminiBaseURL = os.Getenv("GEMINI_BASE_URL")

	key, err := loadAPIKey()
	if err != nil {
		return err
	}
	cfg.GeminiAPIKey = key

	return nil
}

// loadAPIKey resolves the Gemini API key from GEMINI_API_KEY,
// GEMINI_API_KEY_FILE or the gemini_api_key secret, in that order.
func loadAPIKey() (string, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}

	if keyFile := os.Getenv("GEMINI_API_KEY_FILE"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("API key file is empty")
		}
		return key, nil
	}

	return readSecret("gemini_api_key"), nil
}

func envOrSecret(envVar, secret string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return readSecret(secret)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
