package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// configNames are the file names searched in the working directory and
// in ConfigDir, in that order.
var configNames = []string{"lathe.yaml", "config.yaml"}

// Load builds the settings from Default, then the first config file
// found (or the one named by --config), then command-line flags.
// Values are not normalized; call Normalize once a logger is available.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing candidate, or "" when the
// defaults should be used as is.
func findConfigFile() string {
	for _, dir := range []string{".", ConfigDir()} {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// ConfigDir is where Save writes settings for the current user.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Lathe")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Lathe")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lathe")
	}
	return filepath.Join(home, ".config", "lathe")
}

// loadFromFile overlays the YAML document at path onto cfg. Keys the
// Config struct does not know are rejected so a misspelt setting such
// as "close-seam" is reported instead of silently ignored. An empty
// file leaves cfg untouched.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
