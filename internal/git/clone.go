package git

import (
	"context"

	"github.com/raphi011/clg/internal/cmd"
)

// Clone runs "git clone url dest" attached to the terminal and returns
// git's exit status. The error is non-nil only if git could not be started.
func Clone(ctx context.Context, url, dest string) (int, error) {
	if err := CheckGit(); err != nil {
		return 1, err
	}
	return cmd.RunInteractive(ctx, "", "git", "clone", url, dest)
}
