package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrInvalidStdio  = errors.New("invalid stdio setting")
	ErrEmptyCloneArg = errors.New("clone_args cannot contain empty values")
	ErrUnknownKey    = errors.New("unknown configuration key")
	ErrInvalidValue  = errors.New("invalid configuration value")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("gitclone configuration not found. Run 'gitclone init' to initialize")
	ErrConfigExists         = errors.New("configuration file already exists")
)
