package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".exprc.yaml"

// Config holds CLI defaults, overridable per run by flags.
type Config struct {
	// Backend is the default backend name ("vm" or "closure").
	Backend string `yaml:"backend"`

	// Disasm prints the compiled bytecode before the result.
	Disasm bool `yaml:"disasm"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

func defaultConfig() Config {
	return Config{Backend: "vm", Color: "auto"}
}

// loadConfig reads .exprc.yaml from the working directory, falling back
// to the home directory, falling back to defaults. A missing file is not
// an error; a malformed one is.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path := configFileName
	if _, err := os.Stat(path); err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, configFileName)
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Backend == "" {
		cfg.Backend = "vm"
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}
