package git

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/raphi011/clg/internal/log"
)

// MetadataDir is the directory that marks a checkout root.
const MetadataDir = ".git"

// Visitor receives every checkout found by Scan.
type Visitor interface {
	Visit(path string)
}

// VisitFunc adapts a function to a Visitor.
type VisitFunc func(path string)

// Visit calls f(path).
func (f VisitFunc) Visit(path string) { f(path) }

// Scan walks root depth-first and calls v.Visit for every checkout.
// It does not descend into checkouts. Entries are visited in directory
// order as returned by os.ReadDir.
func Scan(ctx context.Context, root string, v Visitor) error {
	for path, err := range Walk(ctx, root) {
		if err != nil {
			return err
		}
		v.Visit(path)
	}
	return nil
}

// Walk returns the checkouts below root as a sequence. A read error or
// cancellation of ctx is yielded once with an empty path and ends the
// sequence.
func Walk(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		w := &walker{ctx: ctx, log: log.FromContext(ctx), yield: yield}
		w.walk(root)
	}
}

type walker struct {
	ctx   context.Context
	log   *log.Logger
	yield func(string, error) bool

	// ancestors holds the directories on the current path, used to break
	// symlink cycles.
	ancestors []os.FileInfo
}

func (w *walker) walk(dir string) bool {
	if err := w.ctx.Err(); err != nil {
		w.yield("", err)
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.yield("", fmt.Errorf("failed to read directory %s: %w", dir, err))
		return false
	}

	if info, err := os.Stat(dir); err == nil {
		w.ancestors = append(w.ancestors, info)
		defer func() { w.ancestors = w.ancestors[:len(w.ancestors)-1] }()
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, ok := dirInfo(path, entry)
		if !ok {
			continue
		}
		if info != nil && w.onPath(info) {
			w.log.Debug("skipping symlink cycle", "path", path)
			continue
		}
		if IsCheckout(path) {
			if !w.yield(path, nil) {
				return false
			}
			continue
		}
		if !w.walk(path) {
			return false
		}
	}
	return true
}

func (w *walker) onPath(info os.FileInfo) bool {
	return slices.ContainsFunc(w.ancestors, func(a os.FileInfo) bool {
		return os.SameFile(a, info)
	})
}

// FindCheckouts returns every checkout below root.
func FindCheckouts(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := Scan(ctx, root, VisitFunc(func(path string) {
		paths = append(paths, path)
	}))
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// IsCheckout reports whether path directly contains a .git directory.
// A .git file (linked worktree, submodule) does not count.
func IsCheckout(path string) bool {
	info, err := os.Stat(filepath.Join(path, MetadataDir))
	return err == nil && info.IsDir()
}

// dirInfo reports whether entry is a directory, following symlinks so that
// linked directories are scanned too. For a symlink it also returns the
// target's FileInfo.
func dirInfo(path string, entry os.DirEntry) (os.FileInfo, bool) {
	if entry.IsDir() {
		return nil, true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return nil, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, false
	}
	return info, true
}
