// Package config holds user preferences for the prayerwall client.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultServerURL is where the prayer-request service listens in a local
// setup.
const DefaultServerURL = "http://localhost:5000"

// Config holds user preferences
type Config struct {
	ServerURL     string `yaml:"server_url" json:"server_url"`         // Origin of the prayer-request service
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation before deleting a request

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// Dir returns the client's state directory (~/.prayerwall).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".prayerwall"), nil
}

// DefaultConfig returns default settings. A .env file in the working
// directory is honored before the environment is consulted.
func DefaultConfig() *Config {
	_ = godotenv.Load()

	logPath := ""
	if dir, err := Dir(); err == nil {
		logPath = filepath.Join(dir, "logs", "prayerwall.log")
	}

	return &Config{
		ServerURL:     getEnv("PRAYERWALL_SERVER", DefaultServerURL),
		ConfirmDelete: true,
		LogLevel:      getEnv("PRAYERWALL_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("PRAYERWALL_LOG_FILE", logPath),
		LogConsole:    getEnv("PRAYERWALL_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load loads config from ~/.prayerwall/config.yaml
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return loadFrom(filepath.Join(dir, "config.yaml"))
}

func loadFrom(path string) (*Config, error) {
	// Return defaults if no config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.prayerwall/config.yaml
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
