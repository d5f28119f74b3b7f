package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by applyEnv. The first non-empty key wins.
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// dotEnvPath is read by applyEnv when the process environment has no key.
var dotEnvPath = ".env"

// Load loads configuration with priority: defaults < file < env < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)
	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./courtdesigner.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "CourtDesigner")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "CourtDesigner")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "courtdesigner")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "courtdesigner")
	}
}

// LocaleStorePath returns where the language preference is persisted.
func (c *Config) LocaleStorePath() string {
	if c.Locale.StorePath != "" {
		return c.Locale.StorePath
	}
	return filepath.Join(ConfigDir(), "preferences.yaml")
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv fills secrets that should not live in config files. The process
// environment beats a local .env file.
func applyEnv(cfg *Config) {
	for _, key := range apiKeyEnv {
		if v := os.Getenv(key); v != "" {
			cfg.AI.APIKey = v
			return
		}
	}

	dotenv, err := godotenv.Read(dotEnvPath)
	if err != nil {
		return
	}
	for _, key := range apiKeyEnv {
		if v := dotenv[key]; v != "" {
			cfg.AI.APIKey = v
			return
		}
	}
}
