package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/clg/internal/config"
	"github.com/raphi011/clg/internal/log"
	"github.com/raphi011/clg/internal/output"
)

// testEnv holds the context and captured streams for a command under test.
type testEnv struct {
	ctx    context.Context
	root   string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv creates a root directory and a context carrying a config
// pointing at it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	env := &testEnv{
		root:   root,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	ctx := config.WithConfig(context.Background(), &config.Config{Root: root})
	ctx = log.WithLogger(ctx, log.New(env.stderr, false, false))
	ctx = output.WithPrinter(ctx, env.stdout)
	env.ctx = ctx

	return env
}

// checkouts creates a .git directory in each slash-separated path below root.
func (e *testEnv) checkouts(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(e.root, filepath.FromSlash(p), ".git"), 0o755); err != nil {
			t.Fatalf("failed to create checkout %s: %v", p, err)
		}
	}
}

// path returns the absolute path for a slash-separated path below root.
func (e *testEnv) path(p string) string {
	return filepath.Join(e.root, filepath.FromSlash(p))
}

// run executes cmd with args in the test context.
func (e *testEnv) run(cmd *cobra.Command, args ...string) error {
	cmd.SetContext(e.ctx)
	cmd.SetArgs(args)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	return cmd.Execute()
}

// exitStatus returns the status carried by an exitError, or -1.
func exitStatus(err error) int {
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return -1
}

// withRoot returns ctx with a config pointing at root.
func withRoot(ctx context.Context, root string) context.Context {
	return config.WithConfig(ctx, &config.Config{Root: root})
}
