package main

import "fmt"

// exitError ends the process with code without printing anything more.
// It is returned for expected failures (no match, ambiguous match, a child
// process exiting non-zero) whose diagnostics were already written.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
