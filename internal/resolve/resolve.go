package resolve

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Outcome classifies a selection.
type Outcome int

const (
	// NotFound means no candidate matched.
	NotFound Outcome = iota
	// Unique means exactly one candidate matched.
	Unique
	// Ambiguous means two or more candidates matched.
	Ambiguous
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not found"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Selection is the result of matching a query against candidates.
type Selection struct {
	Query   string
	Outcome Outcome
	// Matches holds every matching candidate in candidate order.
	Matches []string
}

// Path returns the single match of a Unique selection, or "".
func (s Selection) Path() string {
	if s.Outcome != Unique {
		return ""
	}
	return s.Matches[0]
}

// Select matches query against candidates.
func Select(candidates []string, query string) Selection {
	var matches []string
	for _, c := range candidates {
		if Match(c, query) {
			matches = append(matches, c)
		}
	}

	sel := Selection{Query: query, Matches: matches}
	switch len(matches) {
	case 0:
		sel.Outcome = NotFound
	case 1:
		sel.Outcome = Unique
	default:
		sel.Outcome = Ambiguous
	}
	return sel
}

// Match reports whether query names the trailing segments of path.
// An absolute query must name the whole path.
func Match(path, query string) bool {
	if filepath.IsAbs(query) {
		return filepath.Clean(path) == filepath.Clean(query)
	}
	p := segments(path)
	q := segments(query)
	if len(q) > len(p) {
		return false
	}
	return slices.Equal(p[len(p)-len(q):], q)
}

func segments(path string) []string {
	var out []string
	for _, s := range strings.Split(filepath.ToSlash(path), "/") {
		if s != "" && s != "." {
			out = append(out, s)
		}
	}
	return out
}

// Suggest returns up to limit names that fuzzily match query, best first.
func Suggest(names []string, query string, limit int) []string {
	if query == "" || limit <= 0 {
		return nil
	}
	matches := fuzzy.Find(query, names)
	var out []string
	for _, m := range matches {
		if slices.Contains(out, m.Str) {
			continue
		}
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
