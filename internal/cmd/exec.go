package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/raphi011/clg/internal/log"
)

// Stdio holds the streams a child process is attached to.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Terminal returns the process's own standard streams.
func Terminal() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// RunInteractive runs name with the terminal attached and waits for it.
// See Run.
func RunInteractive(ctx context.Context, dir, name string, args ...string) (int, error) {
	return Run(ctx, Terminal(), dir, name, args...)
}

// Run runs name in dir with the given streams and returns its exit status.
// A child killed by a signal reports status 1. The error is non-nil only if
// the program could not be started or waited for.
func Run(ctx context.Context, stdio Stdio, dir, name string, args ...string) (int, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)

	c := exec.Command(name, args...)
	c.Dir = dir
	c.Stdin = stdio.In
	c.Stdout = stdio.Out
	c.Stderr = stdio.Err

	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	return ExitCode(name, err)
}

// ExitCode converts the error from exec.Cmd.Run into an exit status.
func ExitCode(name string, err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		return 1, nil
	}
	return 1, fmt.Errorf("run %s: %w", name, err)
}
