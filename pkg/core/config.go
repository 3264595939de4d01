// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable that overrides the config path
const ConfigEnv = "MPKG_CONFIG"

// Config holds mpkg configuration
type Config struct {
	DefaultManager string `yaml:"default_manager"`
	Debug          bool   `yaml:"debug"`
	Sudo           bool   `yaml:"sudo"`
	JSON           bool   `yaml:"json"`
	AliasesPath    string `yaml:"aliases_path"`

	// ExtraFlags appends caller flags per manager and command kind,
	// e.g. extra_flags: {apt: {install: ["--no-install-recommends"]}}
	ExtraFlags map[string]map[string][]string `yaml:"extra_flags"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultManager: "", // Auto-detect
		Debug:          false,
		Sudo:           false,
		AliasesPath:    getDefaultAliasesPath(),
		ExtraFlags:     make(map[string]map[string][]string),
	}
}

// DefaultConfigPath returns $MPKG_CONFIG or ~/.config/mpkg/config.yaml
func DefaultConfigPath() (string, error) {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mpkg", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.ExtraFlags == nil {
		cfg.ExtraFlags = make(map[string]map[string][]string)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ExtraFlagsFor returns the configured extra flags for a manager and command kind
func (c *Config) ExtraFlagsFor(manager string, cmd Cmd) []string {
	if c == nil || c.ExtraFlags == nil {
		return nil
	}
	byCmd, ok := c.ExtraFlags[manager]
	if !ok {
		return nil
	}
	return byCmd[cmd.String()]
}

func getDefaultAliasesPath() string {
	if path := os.Getenv("MPKG_ALIASES_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "mpkg", "aliases")
}
