package config

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/lerenn/gitclone/pkg/git"
)

// Config represents the application configuration.
type Config struct {
	// SSH selects git@github.com: remotes by default.
	SSH bool `yaml:"ssh"`
	// Stdio is the disposition applied to the three streams: inherit, ignore or pipe.
	Stdio string `yaml:"stdio"`
	// CloneArgs are appended to every clone command.
	CloneArgs []string `yaml:"clone_args,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SSH:   false,
		Stdio: string(git.StreamInherit),
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if _, err := git.ParseStream(c.Stdio); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStdio, err)
	}
	for _, arg := range c.CloneArgs {
		if arg == "" {
			return ErrEmptyCloneArg
		}
	}
	return nil
}

// StdioStreams returns the configured disposition for the three streams.
// It must only be called on a validated configuration.
func (c Config) StdioStreams() git.Stdio {
	stream, err := git.ParseStream(c.Stdio)
	if err != nil {
		stream = git.StreamInherit
	}
	return git.AllStreams(stream)
}

// Args returns a copy of CloneArgs.
func (c Config) Args() []string {
	return slices.Clone(c.CloneArgs)
}

// Set returns a copy of the configuration with key set to values.
// ssh and stdio take exactly one value; clone_args takes any number, none clearing it.
func (c Config) Set(key string, values ...string) (Config, error) {
	switch key {
	case "ssh":
		if len(values) != 1 {
			return Config{}, fmt.Errorf("%w: ssh expects one value", ErrInvalidValue)
		}
		ssh, err := strconv.ParseBool(values[0])
		if err != nil {
			return Config{}, fmt.Errorf("%w: ssh: %w", ErrInvalidValue, err)
		}
		c.SSH = ssh
	case "stdio":
		if len(values) != 1 {
			return Config{}, fmt.Errorf("%w: stdio expects one value", ErrInvalidValue)
		}
		c.Stdio = values[0]
	case "clone_args":
		c.CloneArgs = slices.Clone(values)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	c.CloneArgs = slices.Clone(c.CloneArgs)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
