package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/clg/internal/config"
	"github.com/raphi011/clg/internal/output"
)

func newRootDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "root",
		Short:   "Print clg root directory",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Print the root directory all repositories are cloned into.

The root comes from CLG_ROOT, then "root" in ~/.clg.toml, then ~/.clg.`,
		Example: `  cd "$(clg root)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			output.FromContext(ctx).Println(config.FromContext(ctx).Root)
			return nil
		},
	}
}
