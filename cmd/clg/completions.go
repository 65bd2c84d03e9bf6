package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/clg/internal/completion"
	"github.com/raphi011/clg/internal/config"
	"github.com/raphi011/clg/internal/git"
)

// completeRepositories provides repository name completion for look.
func completeRepositories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Completion runs without the root's pre-run hook, so read the config here.
	cfg, _ := config.Load()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	checkouts, err := git.FindCheckouts(ctx, cfg.Root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return completion.Filter(completion.Candidates(cfg.Root, checkouts), toComplete), cobra.ShellCompDirectiveNoFileComp
}
