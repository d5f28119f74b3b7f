package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("expected read timeout 10s, got %v", cfg.Server.ReadTimeout)
	}

	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("expected model gemini-2.5-flash, got %s", cfg.AI.Model)
	}
	if cfg.AI.APIKey != "" {
		t.Error("expected no API key by default")
	}
	if !cfg.AI.StrictColors {
		t.Error("expected strict colors to be enabled by default")
	}

	if cfg.Viewer.Width != 1280 || cfg.Viewer.Height != 720 {
		t.Errorf("expected viewer 1280x720, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
server:
  addr: "127.0.0.1:9000"
  read_timeout: 5s
  cors_origins: ["http://localhost:5173"]

ai:
  model: "gemini-2.5-pro"
  timeout: 20s
  strict_colors: false

viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  screenshot_dir: "shots"

locale:
  store_path: "/tmp/prefs.yaml"

logging:
  level: "debug"
  format: "json"
  log_file: "courtdesigner.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("expected addr 127.0.0.1:9000, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("expected read timeout 5s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 60*time.Second {
		t.Errorf("expected write timeout to keep its default, got %v", cfg.Server.WriteTimeout)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}

	if cfg.AI.Model != "gemini-2.5-pro" {
		t.Errorf("expected model gemini-2.5-pro, got %s", cfg.AI.Model)
	}
	if cfg.AI.StrictColors {
		t.Error("expected strict colors to be disabled")
	}

	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Viewer.Width)
	}
	if !cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewer.ScreenshotDir != "shots" {
		t.Errorf("expected screenshot dir shots, got %s", cfg.Viewer.ScreenshotDir)
	}

	if cfg.LocaleStorePath() != "/tmp/prefs.yaml" {
		t.Errorf("expected locale store /tmp/prefs.yaml, got %s", cfg.LocaleStorePath())
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got %s", cfg.Logging.Format)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
viewer:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestLocaleStorePathDefault(t *testing.T) {
	cfg := Default()
	if !strings.HasPrefix(cfg.LocaleStorePath(), ConfigDir()) {
		t.Errorf("expected locale store under %s, got %s", ConfigDir(), cfg.LocaleStorePath())
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("courtdesigner.yaml", []byte("viewer:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find courtdesigner.yaml in current directory")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Run("GEMINI_API_KEY wins over API_KEY", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gem-key")
		t.Setenv("API_KEY", "plain-key")

		cfg := Default()
		applyEnv(cfg)
		if cfg.AI.APIKey != "gem-key" {
			t.Errorf("expected gem-key, got %s", cfg.AI.APIKey)
		}
	})

	t.Run("API_KEY fallback", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("API_KEY", "plain-key")

		cfg := Default()
		applyEnv(cfg)
		if cfg.AI.APIKey != "plain-key" {
			t.Errorf("expected plain-key, got %s", cfg.AI.APIKey)
		}
	})

	t.Run("file value kept without env", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("API_KEY", "")

		cfg := Default()
		cfg.AI.APIKey = "from-file"
		applyEnv(cfg)
		if cfg.AI.APIKey != "from-file" {
			t.Errorf("expected from-file, got %s", cfg.AI.APIKey)
		}
	})

	t.Run("dotenv fallback", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("API_KEY", "")
		t.Chdir(t.TempDir())
		if err := os.WriteFile(".env", []byte("API_KEY=dotenv-key\n"), 0600); err != nil {
			t.Fatalf("write .env: %v", err)
		}

		cfg := Default()
		applyEnv(cfg)
		if cfg.AI.APIKey != "dotenv-key" {
			t.Errorf("expected dotenv-key, got %s", cfg.AI.APIKey)
		}
	})

	t.Run("process env beats dotenv", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("API_KEY", "process-key")
		t.Chdir(t.TempDir())
		if err := os.WriteFile(".env", []byte("GEMINI_API_KEY=dotenv-key\n"), 0600); err != nil {
			t.Fatalf("write .env: %v", err)
		}

		cfg := Default()
		applyEnv(cfg)
		if cfg.AI.APIKey != "process-key" {
			t.Errorf("expected process-key, got %s", cfg.AI.APIKey)
		}
	})
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "addr flag",
			setup: func() { *flagAddr = ":9999" },
			verify: func(cfg *Config) {
				if cfg.Server.Addr != ":9999" {
					t.Errorf("expected addr :9999, got %s", cfg.Server.Addr)
				}
			},
			teardown: func() { *flagAddr = "" },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "gemini-2.5-pro" },
			verify: func(cfg *Config) {
				if cfg.AI.Model != "gemini-2.5-pro" {
					t.Errorf("expected model gemini-2.5-pro, got %s", cfg.AI.Model)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Viewer.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Viewer.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Viewer.Width)
				}
				if cfg.Viewer.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Viewer.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	defer func() {
		*flagAddr = ""
		*flagDebug = false
	}()

	if err := fs.Parse([]string{"--addr", ":7000", "--debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := Default()
	applyFlags(cfg)
	if cfg.Server.Addr != ":7000" {
		t.Errorf("expected addr :7000, got %s", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewer:
  width: 1600
  height: 900
ai:
  api_key: "from-file"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "from-env")
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewer.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Viewer.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewer.Height)
	}

	if cfg.AI.APIKey != "from-env" {
		t.Errorf("expected API key from env, got %s", cfg.AI.APIKey)
	}
}

func TestSaveToOmitsAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.AI.APIKey = "secret"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("saved config must not contain the API key")
	}
	if cfg.AI.APIKey != "secret" {
		t.Error("SaveTo must not modify the receiver")
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Server.Addr != cfg.Server.Addr {
		t.Errorf("round trip addr: got %s, want %s", loaded.Server.Addr, cfg.Server.Addr)
	}
}
