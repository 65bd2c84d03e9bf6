// Package git finds local checkouts and invokes the git CLI.
//
// Discovery is pure filesystem work: a checkout is any directory that
// directly contains a ".git" directory. [Scan] and [Walk] descend from a
// root directory and stop at every checkout they find, so repositories
// nested inside a checkout (vendored code, submodules) are never reported.
// The first directory that cannot be read aborts the walk.
//
// Cloning shells out to the git binary rather than using a Go git library,
// so user configuration (SSH keys, credential helpers, url.insteadOf) keeps
// working.
package git
