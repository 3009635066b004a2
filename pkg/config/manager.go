// Package config provides configuration management for gitclone.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/gitclone/configs"
	"github.com/lerenn/gitclone/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration, failing if the file is missing.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration, falling back to defaults if the file is missing.
	GetConfigWithFallback() (Config, error)
	// SaveConfig writes the configuration file.
	SaveConfig(config Config) error
	// Init writes the embedded default configuration file.
	Init(force bool) error
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fs fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fs,
		configPath: configPath,
	}
}

// DefaultConfigPath returns ~/.gitclone/config.yaml, or a path relative to
// the working directory when the home directory is unknown.
func DefaultConfigPath(fs fs.FS) string {
	homeDir, err := fs.GetHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".gitclone", "config.yaml")
}

func (c *realManager) path() (string, error) {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return "", fmt.Errorf("failed to expand config path: %w", err)
	}
	return path, nil
}

func (c *realManager) GetConfig() (Config, error) {
	path, err := c.path()
	if err != nil {
		return Config{}, err
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if errors.Is(err, ErrConfigNotInitialized) {
		return Default(), nil
	}
	return Config{}, err
}

func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path, err := c.path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

func (c *realManager) Init(force bool) error {
	path, err := c.path()
	if err != nil {
		return err
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := c.fs.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

func (c *realManager) GetConfigPath() string {
	return c.configPath
}
