// Package cmd runs external programs on behalf of clg commands.
//
// Children inherit the terminal (stdin, stdout, stderr) and run to
// completion. Interrupts reach them through the terminal's process group,
// so no context cancellation or timeout is applied here.
//
// # Usage
//
//	code, err := cmd.RunInteractive(ctx, "", "git", "clone", url, dest)
//	if err != nil {
//	    // git could not be started
//	}
//	// code is git's exit status
package cmd
