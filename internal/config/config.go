package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Backend selection
	Backend string

	// SQLite backend
	DBPath string

	// File backend
	StorePath string

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		Backend:   getEnv("ALZES_BACKEND", "sqlite"),
		DBPath:    getEnv("ALZES_DB_PATH", "alzes.db"),
		StorePath: getEnv("ALZES_STORE_PATH", "alzes.json"),
		LogLevel:  getEnv("ALZES_LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"sqlite", "file", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "sqlite" {
		if c.DBPath == "" {
			errors = append(errors, "database path cannot be empty when using sqlite backend")
		} else if err := ensureParentDir(c.DBPath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create database directory for '%s': %v", c.DBPath, err))
		}
	}

	if c.Backend == "file" {
		if c.StorePath == "" {
			errors = append(errors, "store path cannot be empty when using file backend")
		} else if err := ensureParentDir(c.StorePath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create store directory for '%s': %v", c.StorePath, err))
		}
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if strings.ToLower(c.LogLevel) == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
