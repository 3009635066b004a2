package main

import (
	"fmt"

	"github.com/lerenn/gitclone/cmd/gitclone/internal/cli"
	"github.com/lerenn/gitclone/pkg/config"
	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gitclone configuration",
	}

	configCmd.AddCommand(createConfigSetCmd())

	return configCmd
}

func createConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> [values...]",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save the configuration file.

Keys:
  ssh          true or false
  stdio        inherit, ignore or pipe
  clone_args   extra git clone flags, none to clear them

Examples:
  gitclone config set ssh true
  gitclone config set clone_args -- --depth 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := cli.NewConfigManager()
			return setConfigValue(manager, args[0], args[1:]...)
		},
	}
}

// setConfigValue loads the configuration, or the defaults when none exists, and saves it with key updated.
func setConfigValue(manager config.Manager, key string, values ...string) error {
	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return err
	}

	cfg, err = cfg.Set(key, values...)
	if err != nil {
		return err
	}

	if err := manager.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save %s: %w", manager.GetConfigPath(), err)
	}
	return nil
}
