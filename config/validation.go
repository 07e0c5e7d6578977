package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration can reach the provider and bind a port
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.GeminiAPIKey == "" {
		if cfg.Environment == CI {
			errors = append(errors, ValidationError{Field: "GEMINI_API_KEY", Message: "environment variable is required in CI environment"}.Error())
		} else {
			errors = append(errors, ValidationError{Field: "GEMINI_API_KEY", Message: "set GEMINI_API_KEY, GEMINI_API_KEY_FILE or the gemini_api_key secret"}.Error())
		}
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
