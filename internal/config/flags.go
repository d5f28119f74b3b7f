package config

import "github.com/spf13/pflag"

var (
	flagConfig     = new(string)
	flagDebug      = new(bool)
	flagAddr       = new(string)
	flagModel      = new(string)
	flagWindowed   = new(bool)
	flagFullscreen = new(bool)
	flagWidth      = new(int)
	flagHeight     = new(int)
)

// BindFlags registers the configuration overrides on a command's flag set.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(flagConfig, "config", "", "Path to config file")
	fs.BoolVar(flagDebug, "debug", false, "Enable debug logging")
	fs.StringVar(flagAddr, "addr", "", "HTTP listen address")
	fs.StringVar(flagModel, "model", "", "Generative model name")
	fs.BoolVar(flagWindowed, "windowed", false, "Run the viewer in windowed mode")
	fs.BoolVar(flagFullscreen, "fullscreen", false, "Run the viewer in fullscreen mode")
	fs.IntVar(flagWidth, "width", 0, "Viewer window width")
	fs.IntVar(flagHeight, "height", 0, "Viewer window height")
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if *flagModel != "" {
		cfg.AI.Model = *flagModel
	}
	if *flagWindowed {
		cfg.Viewer.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
