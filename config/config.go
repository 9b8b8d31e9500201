// Package config loads the application settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/network"
)

// FileName is the configuration file looked up when no path is given.
const FileName = "pazzles.toml"

var ErrInvalid = errors.New("config: invalid value")

// Config represents the pazzles.toml configuration file
type Config struct {
	App     AppConfig     `toml:"app"`
	Network NetworkConfig `toml:"network"`
	UI      UIConfig      `toml:"ui"`
}

type AppConfig struct {
	Title  string `toml:"title"`
	MaxTPS int    `toml:"max_tps"`
	// Window size in device-independent pixels
	DisplayWidth  int `toml:"display_width"`
	DisplayHeight int `toml:"display_height"`
	// Logical surface the UI is laid out on
	SurfaceWidth  int  `toml:"surface_width"`
	SurfaceHeight int  `toml:"surface_height"`
	Debug         bool `toml:"debug"`
}

type NetworkConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type UIConfig struct {
	// Anchor of the menu column, e.g. "center" or "midtop"
	MenuAnchor geom.Anchor `toml:"menu_anchor"`
	Padding    float64     `toml:"padding"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		App: AppConfig{
			Title:         "Pazzles",
			MaxTPS:        60,
			DisplayWidth:  1280,
			DisplayHeight: 720,
			SurfaceWidth:  640,
			SurfaceHeight: 360,
		},
		Network: NetworkConfig{
			Host: "localhost",
			Port: network.DefaultPort,
		},
		UI: UIConfig{
			MenuAnchor: geom.Center,
			Padding:    8,
		},
	}
}

// Addr returns the host:port the relay listens on or dials.
func (n NetworkConfig) Addr() string {
	return fmt.Sprintf("%s:%d", n.Host, n.Port)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var problems []string
	if c.App.MaxTPS <= 0 {
		problems = append(problems, fmt.Sprintf("app.max_tps %d must be positive", c.App.MaxTPS))
	}
	if c.App.DisplayWidth <= 0 || c.App.DisplayHeight <= 0 {
		problems = append(problems, fmt.Sprintf("app display size %dx%d must be positive", c.App.DisplayWidth, c.App.DisplayHeight))
	}
	if c.App.SurfaceWidth <= 0 || c.App.SurfaceHeight <= 0 {
		problems = append(problems, fmt.Sprintf("app surface size %dx%d must be positive", c.App.SurfaceWidth, c.App.SurfaceHeight))
	}
	if c.Network.Port <= 0 || c.Network.Port > 65535 {
		problems = append(problems, fmt.Sprintf("network.port %d out of range", c.Network.Port))
	}
	if c.UI.Padding < 0 {
		problems = append(problems, fmt.Sprintf("ui.padding %g must not be negative", c.UI.Padding))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Load reads the configuration at path over the defaults.
// If the file doesn't exist, the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
