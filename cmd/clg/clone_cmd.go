package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/clg/internal/config"
	"github.com/raphi011/clg/internal/git"
	"github.com/raphi011/clg/internal/giturl"
	"github.com/raphi011/clg/internal/log"
	"github.com/raphi011/clg/internal/output"
	"github.com/raphi011/clg/internal/workspace"
)

// runClone is replaced in tests.
var runClone = git.Clone

func newCloneCmd() *cobra.Command {
	var (
		name   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "clone [--name NAME] <url>",
		Short:   "Clone a repository under the root directory",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Clone a repository into {root}/{host}/{path}.

The URL may be absolute (https://, ssh://, git://), scp-like
(git@github.com:owner/repo) or "owner/repo", which resolves to github.com.
A trailing ".git" is dropped from the directory name.

clg exits with git's exit status.`,
		Example: `  clg clone eagletmt/clg                      # ~/.clg/github.com/eagletmt/clg
  clg clone git@github.com:eagletmt/clg.git   # same directory, cloned over ssh
  clg clone -n clg2 eagletmt/clg              # ~/.clg/github.com/eagletmt/clg2
  clg clone --dry-run gitlab.com:group/repo   # print the destination only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			u, err := giturl.Normalize(ctx, args[0])
			if err != nil {
				return err
			}

			dest, err := workspace.DestinationPath(cfg.Root, u, name)
			if err != nil {
				return fmt.Errorf("resolve destination: %w", err)
			}

			if dryRun {
				out.Printf("%s -> %s\n", u, dest)
				return nil
			}

			l.Debug("cloning repository", "url", u, "dest", dest)

			code, err := runClone(ctx, u.String(), dest)
			if err != nil {
				return err
			}
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the local repository directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the URL and destination without cloning")

	return cmd
}
