// Package completion builds the repository names offered to shell
// completion for "clg look".
package completion

import (
	"path/filepath"
	"slices"
	"strings"
)

// Candidates returns completion lines for checkouts under root: the bare
// repository name, followed by "owner/name" when the parent directory
// looks like an owner rather than a host (its name contains no ".").
// Duplicates are kept; each checkout contributes its lines in order.
func Candidates(root string, checkouts []string) []string {
	root = filepath.Clean(root)
	var out []string
	for _, p := range checkouts {
		name := filepath.Base(p)
		out = append(out, name)

		parentDir := filepath.Dir(p)
		if filepath.Clean(parentDir) == root {
			continue
		}
		if owner := filepath.Base(parentDir); !strings.Contains(owner, ".") {
			out = append(out, owner+"/"+name)
		}
	}
	return out
}

// Filter returns the distinct candidates starting with prefix, sorted.
func Filter(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
