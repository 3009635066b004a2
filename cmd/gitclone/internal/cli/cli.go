// Package cli provides common configuration and utility functions for the gitclone CLI.
package cli

import (
	"github.com/lerenn/gitclone/pkg/config"
	"github.com/lerenn/gitclone/pkg/dependencies"
	"github.com/lerenn/gitclone/pkg/fs"
	"github.com/lerenn/gitclone/pkg/gitclone"
	"github.com/lerenn/gitclone/pkg/logger"
)

var (
	// Quiet suppresses the git output.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path in use.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath(fs.NewFS())
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), GetConfigPath())
}

// NewCloner creates a Cloner wired with the default collaborators.
func NewCloner() (gitclone.Cloner, error) {
	cloner, err := gitclone.NewCloner(gitclone.NewClonerParams{
		Dependencies: dependencies.New(),
	})
	if err != nil {
		return nil, err
	}
	if Verbose {
		cloner.SetLogger(logger.NewVerboseLogger())
	}
	return cloner, nil
}
