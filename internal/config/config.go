// Package config loads and saves the fsreport TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fsreport configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Forecast   ForecastConfig   `toml:"forecast"`
	Charts     ChartsConfig     `toml:"charts"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds data locations.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// ForecastConfig holds projection defaults.
type ForecastConfig struct {
	HorizonYears int     `toml:"horizon_years"`
	Confidence   float64 `toml:"confidence"`
}

// ChartsConfig holds PNG chart output settings.
type ChartsConfig struct {
	OutputDir string `toml:"output_dir"`
}

// AppearanceConfig holds TUI theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DataDir: "data",
		},
		Forecast: ForecastConfig{
			HorizonYears: 3,
			Confidence:   0.95,
		},
		Charts: ChartsConfig{
			OutputDir: "charts",
		},
		Appearance: AppearanceConfig{
			Theme: "statement-navy",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fsreport")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fsreport")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
