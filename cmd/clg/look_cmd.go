package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/clg/internal/completion"
	"github.com/raphi011/clg/internal/config"
	"github.com/raphi011/clg/internal/git"
	"github.com/raphi011/clg/internal/log"
	"github.com/raphi011/clg/internal/output"
	"github.com/raphi011/clg/internal/resolve"
	"github.com/raphi011/clg/internal/shell"
	"github.com/raphi011/clg/internal/ui/styles"
)

// launchShell is replaced in tests.
var launchShell = shell.Launch

// maxSuggestions caps the "did you mean" list for unmatched queries.
const maxSuggestions = 3

func newLookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "look <repository>",
		Short:   "Open a shell in a local repository",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Find the local repository whose path ends with <repository> and start
$SHELL (default /bin/sh) inside it.

<repository> is matched against whole trailing path segments, so "clg",
"eagletmt/clg" and "github.com/eagletmt/clg" all select
{root}/github.com/eagletmt/clg. If nothing or more than one repository
matches, the candidates are printed and clg exits with status 1.`,
		Example: `  clg look clg             # unique repo name
  clg look eagletmt/clg    # disambiguate by owner`,
		ValidArgsFunction: completeRepositories,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			query := args[0]

			checkouts, err := git.FindCheckouts(ctx, cfg.Root)
			if err != nil {
				return err
			}

			sel := resolve.Select(checkouts, query)
			l.Debug("selected repository", "query", query, "outcome", sel.Outcome, "matches", len(sel.Matches))

			switch sel.Outcome {
			case resolve.NotFound:
				l.Println(styles.ErrorStyle.Render("No repository found matching " + query))
				names := completion.Filter(completion.Candidates(cfg.Root, checkouts), "")
				if suggestions := resolve.Suggest(names, query, maxSuggestions); len(suggestions) > 0 {
					l.Println(styles.MutedStyle.Render("Did you mean: " + strings.Join(suggestions, ", ")))
				}
				return &exitError{code: 1}

			case resolve.Ambiguous:
				l.Println(styles.WarningStyle.Render(fmt.Sprintf("%d repositories found matching %s", len(sel.Matches), query)))
				for _, m := range sel.Matches {
					l.Printf("  - %s\n", styles.AccentStyle.Render(m))
				}
				return &exitError{code: 1}
			}

			dir := sel.Path()
			out.Printf("chdir %s\n", dir)

			code, err := launchShell(ctx, dir)
			if err != nil {
				return err
			}
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	return cmd
}
