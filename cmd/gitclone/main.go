// Package main provides the command-line interface for gitclone.
package main

import (
	"log"

	"github.com/lerenn/gitclone/cmd/gitclone/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := createCloneCmd()

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Do not show git output")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(createInitCmd())
	rootCmd.AddCommand(createConfigCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
