//go:build integration

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
)

// installFakeGit puts a "git" script first in PATH that records its
// arguments and creates the destination checkout, exiting with status.
func installFakeGit(t *testing.T, status int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake git requires a POSIX shell")
	}

	bin := t.TempDir()
	argsFile := filepath.Join(bin, "args")
	script := `#!/bin/sh
printf '%s\n' "$@" > "` + argsFile + `"
mkdir -p "$3/.git"
exit ` + strconv.Itoa(status) + `
`
	if err := os.WriteFile(filepath.Join(bin, "git"), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake git: %v", err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	return argsFile
}

// TestClone_ThenList clones through the real exec path and lists the result.
//
// Scenario: User runs `clg clone git@github.com:eagletmt/clg.git`, then `clg list`
// Expected: git receives the canonical URL and destination, list shows the checkout
func TestClone_ThenList(t *testing.T) {
	argsFile := installFakeGit(t, 0)
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatalf("fake git not on PATH: %v", err)
	}

	env := newTestEnv(t)
	if err := env.run(newCloneCmd(), "git@github.com:eagletmt/clg.git"); err != nil {
		t.Fatalf("clone failed: %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("fake git was not run: %v", err)
	}
	want := "clone\nssh://git@github.com/eagletmt/clg.git\n" + env.path("github.com/eagletmt/clg") + "\n"
	if string(data) != want {
		t.Errorf("git args = %q, want %q", data, want)
	}

	if err := env.run(newListCmd()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := env.stdout.String(); got != "github.com/eagletmt/clg\n" {
		t.Errorf("list output = %q", got)
	}
}

// TestClone_GitFailure propagates git's exit status.
//
// Scenario: git clone exits 2
// Expected: clone returns exit status 2
func TestClone_GitFailure(t *testing.T) {
	installFakeGit(t, 2)

	env := newTestEnv(t)
	err := env.run(newCloneCmd(), "eagletmt/clg")
	if code := exitStatus(err); code != 2 {
		t.Errorf("exit status = %d (err %v), want 2", code, err)
	}
}
