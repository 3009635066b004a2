package main

import (
	"fmt"

	"github.com/lerenn/gitclone/cmd/gitclone/internal/cli"
	"github.com/lerenn/gitclone/pkg/config"
	"github.com/lerenn/gitclone/pkg/git"
	"github.com/lerenn/gitclone/pkg/gitclone"
	"github.com/spf13/cobra"
)

type cloneFlags struct {
	ssh    bool
	sshSet bool
	branch string
	dest   string
	quiet  bool
}

func createCloneCmd() *cobra.Command {
	var flags cloneFlags

	cloneCmd := &cobra.Command{
		Use:   "gitclone <user/repo[#branch]> [destination] [-- git flags...]",
		Short: "Clone a GitHub repository from its short reference",
		Long: `Clone a GitHub repository from a user/repo or user/repo#branch reference.

If the clone fails, the directory it was creating is removed.

Examples:
  gitclone foo/bar
  gitclone foo/bar#dev mydir --ssh
  gitclone foo/bar -- --depth 1`,
		Args:          validateCloneArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.NewConfigManager().GetConfigWithFallback()
			if err != nil {
				return err
			}

			flags.sshSet = cmd.Flags().Changed("ssh")
			flags.quiet = cli.Quiet
			req := buildRequest(args, cmd.ArgsLenAtDash(), cfg, flags)

			cloner, err := cli.NewCloner()
			if err != nil {
				return err
			}

			built, err := cloner.Prepare(req)
			if err != nil {
				return err
			}
			if _, err := cloner.Run(built); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Cloned %s into %s\n", built.Reference, built.Destination)
			}
			return nil
		},
	}

	cloneCmd.Flags().BoolVar(&flags.ssh, "ssh", false, "Clone over SSH (git@github.com:) instead of HTTPS")
	cloneCmd.Flags().StringVarP(&flags.branch, "branch", "b", "", "Branch to check out when the reference has none")
	cloneCmd.Flags().StringVar(&flags.dest, "dest", "", "Destination used when none is given as argument")

	return cloneCmd
}

// validateCloneArgs accepts a reference and an optional destination before "--".
func validateCloneArgs(cmd *cobra.Command, args []string) error {
	positional := args
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		positional = args[:dash]
	}
	if len(positional) < 1 || len(positional) > 2 {
		return fmt.Errorf("%w: accepts a reference and an optional destination, received %d argument(s)",
			gitclone.ErrInvalidArgument, len(positional))
	}
	return nil
}

// buildRequest merges the configuration, flags and arguments into a clone request.
// Arguments after the dash are appended to the configured clone arguments.
func buildRequest(args []string, dash int, cfg config.Config, flags cloneFlags) gitclone.ByString {
	positional, extra := args, []string(nil)
	if dash >= 0 {
		positional, extra = args[:dash], args[dash:]
	}

	opts := gitclone.Options{
		SSH:    cfg.SSH,
		Dest:   flags.dest,
		Branch: flags.branch,
		Stdio:  cfg.StdioStreams(),
		Args:   append(cfg.Args(), extra...),
	}
	if flags.sshSet {
		opts.SSH = flags.ssh
	}
	if flags.quiet {
		opts.Stdio = git.AllStreams(git.StreamIgnore)
	}

	req := gitclone.ByString{Reference: positional[0], Options: &opts}
	if len(positional) > 1 {
		req.Dest = positional[1]
	}
	return req
}
