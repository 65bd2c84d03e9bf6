// Package shell hands the terminal over to the user's interactive shell.
//
// On unix the clg process is replaced by the shell (execve), so the shell
// becomes the child of whatever started clg. Elsewhere the shell is spawned
// and clg waits for it and exits with its status.
package shell

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/clg/internal/cmd"
	"github.com/raphi011/clg/internal/log"
)

// Program returns the shell to launch: $SHELL, or the platform default.
func Program() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return defaultShell()
}

// Launch starts an interactive shell in dir. Where the process can be
// replaced, Launch only returns on failure. Otherwise it returns the
// shell's exit status once it exits.
func Launch(ctx context.Context, dir string) (int, error) {
	l := log.FromContext(ctx)
	program := Program()

	warnIfNotTerminal(l, os.Stdin)

	if CanReplace {
		l.Debug("exec shell", "shell", program, "dir", dir)
		err := replace(program, dir)
		return 1, fmt.Errorf("exec %s in %s: %w", program, dir, err)
	}

	l.Debug("spawn shell", "shell", program, "dir", dir)
	return Spawn(ctx, dir, program)
}

// warnIfNotTerminal warns that an interactive shell will read from a pipe
// or file instead of the user.
func warnIfNotTerminal(l *log.Logger, f *os.File) {
	if fd := f.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		l.Printf("Warning: stdin is not a terminal, %s will not be interactive\n", Program())
	}
}

// Spawn runs program in dir attached to the terminal and returns its
// exit status.
func Spawn(ctx context.Context, dir, program string, args ...string) (int, error) {
	return cmd.RunInteractive(ctx, dir, program, args...)
}
