package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/codearea/internal/log"
)

const defaultHeader = `# codearea configuration.
# Every key can be overridden with a CODEAREA_ environment variable,
# e.g. CODEAREA_LAYOUT_CODE_TYPE=bin.
`

// Save writes cfg to configPath as yaml, creating the parent directory.
func Save(configPath string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, append([]byte(defaultHeader), data...), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// WriteDefault creates a config file at configPath with default settings.
func WriteDefault(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)
	if err := Save(configPath, Defaults()); err != nil {
		return err
	}
	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
