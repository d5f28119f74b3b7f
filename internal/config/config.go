// Package config handles configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AI      AIConfig      `yaml:"ai"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Locale  LocaleConfig  `yaml:"locale"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// AIConfig holds the remote generation settings.
type AIConfig struct {
	APIKey       string        `yaml:"api_key"`
	Model        string        `yaml:"model"`
	Timeout      time.Duration `yaml:"timeout"`
	StrictColors bool          `yaml:"strict_colors"`
}

// ViewerConfig holds the preview window settings.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	// ScreenshotDir is where P saves captures. Empty means the working
	// directory.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LocaleConfig holds the language preference store location. An empty path
// means the store lives in ConfigDir().
type LocaleConfig struct {
	StorePath string `yaml:"store_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		AI: AIConfig{
			Model:        "gemini-2.5-flash",
			Timeout:      45 * time.Second,
			StrictColors: true,
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Format:  "console",
			LogFile: "",
		},
	}
}
