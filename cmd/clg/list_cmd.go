package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/clg/internal/completion"
	"github.com/raphi011/clg/internal/config"
	"github.com/raphi011/clg/internal/git"
	"github.com/raphi011/clg/internal/output"
	"github.com/raphi011/clg/internal/workspace"
)

func newListCmd() *cobra.Command {
	var forCompletion bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List local repositories",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List every repository under the root directory, relative to the root.

With --completion, print the names "clg look" accepts instead: the
repository name and, when the parent directory is an owner rather than a
host, "owner/name".

Nothing is printed if any directory under the root cannot be read.`,
		Example: `  clg list                # github.com/eagletmt/clg
  clg list --completion   # clg, eagletmt/clg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			checkouts, err := git.FindCheckouts(ctx, cfg.Root)
			if err != nil {
				return err
			}

			if forCompletion {
				out.Lines(completion.Candidates(cfg.Root, checkouts))
				return nil
			}

			lines := make([]string, 0, len(checkouts))
			for _, path := range checkouts {
				rel, err := workspace.RelPath(cfg.Root, path)
				if err != nil {
					return err
				}
				lines = append(lines, rel)
			}
			out.Lines(lines)
			return nil
		},
	}

	cmd.Flags().BoolVar(&forCompletion, "completion", false, "Generate repository list for completion")

	return cmd
}
