//go:build unix

package shell

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// CanReplace reports whether Launch replaces the current process.
const CanReplace = true

func defaultShell() string {
	return "/bin/sh"
}

func replace(program, dir string) error {
	path, err := exec.LookPath(program)
	if err != nil {
		return err
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}
	env := append(os.Environ(), "PWD="+dir)
	return unix.Exec(path, []string{program}, env)
}
