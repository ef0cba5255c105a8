package sfoglia

import (
	"github.com/BurntSushi/toml"
)

// Config is the TOML file form of Options plus defaults the application
// wants alongside the window: a font and a locale.
//
// Example:
//
//	title  = "my game"
//	width  = 800
//	height = 600
//
//	[window]
//	resizable = true
//
//	log_path  = "logs/game.log"
//	log_level = "debug"
//	font_path = "assets/Mononoki.ttf"
//	font_size = 16
//	locale    = "it"
type Config struct {
	Title  string        `toml:"title"`
	Width  int32         `toml:"width"`
	Height int32         `toml:"height"`
	Window WindowOptions `toml:"window"`

	LogPath  string `toml:"log_path"`
	LogLevel string `toml:"log_level"`

	FontPath string `toml:"font_path"`
	FontSize int    `toml:"font_size"`
	Locale   string `toml:"locale"`
}

// LoadConfig decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, newOpError("load_config", err)
	}
	return cfg, nil
}

// NewFromConfig builds a Core from a decoded config.
func NewFromConfig(cfg Config) (*Core, error) {
	if cfg.LogLevel != "" {
		SetRawLogLevel(cfg.LogLevel)
	}
	return New(Options{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Window:  cfg.Window,
		LogPath: cfg.LogPath,
	})
}
