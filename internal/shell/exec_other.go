//go:build !unix

package shell

import (
	"errors"
	"os"
)

// CanReplace reports whether Launch replaces the current process.
const CanReplace = false

func defaultShell() string {
	if comspec := os.Getenv("COMSPEC"); comspec != "" {
		return comspec
	}
	return "cmd.exe"
}

func replace(string, string) error {
	return errors.ErrUnsupported
}
